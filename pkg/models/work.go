package models

// WorkUnit is the JSON envelope handed to a worker process: everything it
// needs to implement the ticket, including feedback from prior attempts.
type WorkUnit struct {
	TicketID           string               `json:"ticket_id"`
	Attempt            int                  `json:"attempt"`
	TraceID            string               `json:"trace_id"`
	Title              string               `json:"title"`
	Description        string               `json:"description"`
	AcceptanceCriteria []string             `json:"acceptance_criteria"`
	RepoURL            string               `json:"repo_url,omitempty"`
	BranchName         string               `json:"branch_name,omitempty"`
	FileHints          []string             `json:"file_hints,omitempty"`
	Feedback           []CriticFeedbackItem `json:"feedback,omitempty"`
	RetrievedContext   []RetrievedChunk     `json:"retrieved_context,omitempty"`
}

// RetrievedChunk is a code excerpt supplied by the retrieval collaborator
type RetrievedChunk struct {
	Path    string  `json:"path"`
	Content string  `json:"content"`
	Score   float64 `json:"score,omitempty"`
}

// WorkerResult is the JSON document a worker writes back when it finishes
type WorkerResult struct {
	TicketID       string            `json:"ticket_id"`
	Attempt        int               `json:"attempt"`
	Success        bool              `json:"success"`
	BranchName     string            `json:"branch_name,omitempty"`
	PRURL          string            `json:"pr_url,omitempty"`
	Files          []string          `json:"files,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	CriteriaStatus []CriterionStatus `json:"criteria_status,omitempty"`
	FailureClass   string            `json:"failure_class,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// CriticVerdict is the critic collaborator's decision over a produced diff
type CriticVerdict struct {
	Approve  bool                 `json:"approve"`
	Feedback []CriticFeedbackItem `json:"feedback,omitempty"`
}
