package entity

// OutcomeStatus はドメインコミットの結果種別を表します
type OutcomeStatus string

const (
	OutcomeCommitted OutcomeStatus = "committed"
	OutcomeFailed    OutcomeStatus = "failed"
	OutcomeApplied   OutcomeStatus = "applied" // ローカル適用のみ（interface）
)

// DomainOutcome は保存処理における1ドメインの結果を表します
// 集約レベルで「どのドメインが失敗したか」を判別できるよう、
// タグ付きの結果として保持します
type DomainOutcome struct {
	Domain Domain
	Status OutcomeStatus
	Err    error
}

// Succeeded はコミットまたは適用が成功したかを判定します
func (o DomainOutcome) Succeeded() bool {
	return o.Status != OutcomeFailed
}
