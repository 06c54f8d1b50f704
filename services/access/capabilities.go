package access

// Capabilities is the fixed-shape record of what a role may do. Instances
// live only in the table below and are never mutated after definition.
type Capabilities struct {
	CreateDeal       bool `json:"createDeal"`
	EditTerms        bool `json:"editTerms"`
	AdvanceStage     bool `json:"advanceStage"`
	InviteLenders    bool `json:"inviteLenders"`
	ChangeAccessTier bool `json:"changeAccessTier"`
	UploadDocuments  bool `json:"uploadDocuments"`
	ViewAllDocuments bool `json:"viewAllDocuments"`
	AskQuestions     bool `json:"askQuestions"`
	AnswerQuestions  bool `json:"answerQuestions"`
	SubmitCommitment bool `json:"submitCommitment"`
	ViewBook         bool `json:"viewBook"`
	ManageChecklist  bool `json:"manageChecklist"`
	SignNDA          bool `json:"signNDA"`
}

// capabilityTable is the single canonical role-to-capability mapping.
var capabilityTable = map[Role]Capabilities{
	RoleBookrunner: {
		CreateDeal:       true,
		EditTerms:        true,
		AdvanceStage:     true,
		InviteLenders:    true,
		ChangeAccessTier: true,
		UploadDocuments:  true,
		ViewAllDocuments: true,
		AnswerQuestions:  true,
		ViewBook:         true,
		ManageChecklist:  true,
	},
	RoleIssuer: {
		EditTerms:        true,
		UploadDocuments:  true,
		ViewAllDocuments: true,
		AnswerQuestions:  true,
		ViewBook:         true,
		ManageChecklist:  true,
	},
	RoleInvestor: {
		AskQuestions:     true,
		SubmitCommitment: true,
		SignNDA:          true,
	},
}

// CapabilitiesFor returns the capability record for a role string. It is
// total: an unrecognized or absent role yields the all-false record, never
// an error.
func CapabilitiesFor(role string) Capabilities {
	return capabilityTable[NormalizeRole(role)]
}
