package httpadapter

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func runWithCORS(method string) (*app.RequestContext, bool) {
	reached := false
	ctx := app.NewContext(0)
	ctx.Request.Header.SetMethod(method)
	ctx.SetHandlers(app.HandlersChain{
		corsMiddleware(),
		func(_ context.Context, ctx *app.RequestContext) {
			reached = true
			ctx.SetStatusCode(consts.StatusOK)
		},
	})
	ctx.Next(context.Background())
	return ctx, reached
}

func TestCORS_PreflightStopsChain(t *testing.T) {
	ctx, reached := runWithCORS(consts.MethodOptions)
	if reached {
		t.Fatal("preflight should not reach the route handler")
	}
	if ctx.Response.StatusCode() != consts.StatusNoContent {
		t.Fatalf("status got=%d want=%d", ctx.Response.StatusCode(), consts.StatusNoContent)
	}
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Methods")); got != corsAllowMethods {
		t.Fatalf("allow-methods got=%q want=%q", got, corsAllowMethods)
	}
}

func TestCORS_ObserverPagesCanPostTurns(t *testing.T) {
	ctx, reached := runWithCORS(consts.MethodPost)
	if !reached {
		t.Fatal("POST should reach the route handler")
	}
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "*" {
		t.Fatalf("allow-origin got=%q", got)
	}
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Headers")); got != "Content-Type" {
		t.Fatalf("allow-headers got=%q", got)
	}
}
