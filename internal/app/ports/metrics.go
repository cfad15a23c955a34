package ports

type TurnOutcome string

const (
	TurnCompleted TurnOutcome = "completed"
	TurnFailed    TurnOutcome = "failed"
)

type TurnMetrics interface {
	RecordTurn(outcome TurnOutcome)
	RecordRejected()
	RecordIntention(applied bool, reason string)
}
