package oracle

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"aulagen/internal/app/ports"
	"aulagen/internal/domain/classroom"
	"aulagen/internal/domain/world"
)

type stubProvider struct {
	reply []byte
	err   error
	got   ports.OracleRequest
}

func (s *stubProvider) Propose(_ context.Context, req ports.OracleRequest) ([]byte, error) {
	s.got = req
	return s.reply, s.err
}

func TestParseReply_StripsFencesAndRejectsMalformedEntries(t *testing.T) {
	raw := []byte("```json\n{\"updates\":[" +
		`{"studentName":"Mateo","thought":"t","action":"Camina","targetX":6,"targetY":5,"newMemory":"m"},` +
		`{"studentName":"Sofía","thought":"t","action":"a","targetX":"left","targetY":5,"newMemory":"m"},` +
		`{"studentName":"Lucas","thought":"t","action":"a","targetY":5,"newMemory":"m"}` +
		"]}\n```")

	got, rejected, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 1 || got[0].StudentName != "Mateo" || got[0].TargetY != 5 {
		t.Fatalf("unexpected intentions: %+v", got)
	}
	if len(rejected) != 2 {
		t.Fatalf("expected 2 rejections, got %d", len(rejected))
	}
	for _, r := range rejected {
		if !errors.Is(r.Err, ErrMalformedIntention) {
			t.Fatalf("expected ErrMalformedIntention, got %v", r.Err)
		}
	}
	if rejected[0].Index != 1 || rejected[1].Index != 2 {
		t.Fatalf("unexpected rejection indexes: %+v", rejected)
	}
}

func TestParseReply_UndecodableIsUnavailable(t *testing.T) {
	for _, raw := range []string{"", "   ", "the students are resting", "[1,2"} {
		if _, _, err := ParseReply([]byte(raw)); !errors.Is(err, ErrOracleUnavailable) {
			t.Fatalf("reply %q: expected ErrOracleUnavailable, got %v", raw, err)
		}
	}
}

func TestParseReply_MissingUpdatesIsEmpty(t *testing.T) {
	got, rejected, err := ParseReply([]byte(`{"note":"nothing"}`))
	if err != nil || len(got) != 0 || len(rejected) != 0 {
		t.Fatalf("expected empty result, got %v %v %v", got, rejected, err)
	}
}

func TestResolve_ClampsThenSubstitutesWall(t *testing.T) {
	g := Gateway{Grid: world.DefaultClassroom()}
	current := world.Point{X: 6, Y: 6}

	// (-5, 999) clamps to (0, 14), a wall corner.
	target, substituted := g.Resolve(Intention{TargetX: -5, TargetY: 999}, current)
	if !substituted || target != current {
		t.Fatalf("expected substitution to %v, got %v (substituted=%v)", current, target, substituted)
	}

	target, substituted = g.Resolve(Intention{TargetX: 6, TargetY: 5}, current)
	if substituted || target != (world.Point{X: 6, Y: 5}) {
		t.Fatalf("expected (6,5), got %v (substituted=%v)", target, substituted)
	}
}

func TestNarrate_ThoughtThenClassifiedAction(t *testing.T) {
	s := classroom.NewStudent("s1", "Mateo", "Curioso", "bg-blue-500", world.Point{X: 6, Y: 6})
	in := Intention{StudentName: "Mateo", Thought: "Qué hay ahí", Action: "Le dice hola a Sofía"}

	events := Narrate(classroom.Classifier{}, in, s)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != classroom.EventThought || events[0].Content != in.Thought || events[0].AgentID != "s1" || events[0].AgentName != "Mateo" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Kind != classroom.EventDialogue || events[1].Content != in.Action || events[1].AgentID != "s1" || events[1].AgentName != "Mateo" {
		t.Fatalf("unexpected second event: %+v", events[1])
	}
}

func TestRenderMap_MarksStudentsFloorAndWalls(t *testing.T) {
	g, err := world.NewGrid([][]world.TileID{
		{world.TileWallPlain, world.TileWallPlain, world.TileWallPlain},
		{world.TileWallPlain, world.TileFloorWood, world.TileFloorWood},
	}, nil)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	s := classroom.NewStudent("s1", "Zzyx", "", "", world.Point{X: 2, Y: 1})

	got := RenderMap(g, []classroom.Student{s})
	if want := "###\n#.Z"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBuildRequest_BoundsHistoryAndCarriesDirective(t *testing.T) {
	g := Gateway{Grid: world.DefaultClassroom(), HistoryWindow: 2}
	base := time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)
	history := []classroom.Event{
		{Kind: classroom.EventSystem, Content: "primero", OccurredAt: base},
		{Kind: classroom.EventSystem, Content: "segundo", OccurredAt: base.Add(time.Second)},
		{Kind: classroom.EventAction, AgentName: "Mateo", Content: "tercero", OccurredAt: base.Add(2 * time.Second)},
	}

	req := g.BuildRequest(classroom.SeedStudents(), history, "Abrid el libro")
	if strings.Contains(req.Prompt, "primero") {
		t.Fatalf("history window not applied")
	}
	for _, want := range []string{
		"[09:30:01] SISTEMA: segundo",
		"[09:30:02] Mateo: tercero",
		`EL PROFESOR HA DICHO: "Abrid el libro"`,
		"MAPA DEL AULA (20x15)",
		"Escritorio Profe: (9, 2)",
		"- Alumno: Mateo (ID: s1, Pos: X=6, Y=6)",
	} {
		if !strings.Contains(req.Prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if req.Directive != "Abrid el libro" || len(req.ResponseSchema) == 0 {
		t.Fatalf("unexpected request metadata: %+v", req.Directive)
	}

	free := g.BuildRequest(nil, nil, "")
	if !strings.Contains(free.Prompt, "SIMULACIÓN LIBRE") {
		t.Fatalf("free run prompt missing autonomy instruction")
	}
}

func TestConsult_WrapsProviderFailure(t *testing.T) {
	p := &stubProvider{err: errors.New("connection refused")}
	g := Gateway{Provider: p, Grid: world.DefaultClassroom()}

	_, _, err := g.Consult(context.Background(), g.BuildRequest(nil, nil, ""))
	if !errors.Is(err, ErrOracleUnavailable) {
		t.Fatalf("expected ErrOracleUnavailable, got %v", err)
	}

	p.err = nil
	p.reply = []byte(`{"updates":[]}`)
	got, _, err := g.Consult(context.Background(), g.BuildRequest(nil, nil, "hola"))
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty success, got %v %v", got, err)
	}
	if p.got.Directive != "hola" {
		t.Fatalf("provider did not receive request")
	}
}
