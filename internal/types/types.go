// Package types holds the value types shared across the care-plan pipeline.
package types

// ServiceType selects which 第2表 variant a plan targets.
type ServiceType string

const (
	ServiceFacility ServiceType = "facility"
	ServiceHome     ServiceType = "home"
)

// PlanName returns the formal document name for the service type
// (施設サービス計画書 or 居宅サービス計画書, both 第2表).
func (s ServiceType) PlanName() string {
	switch s {
	case ServiceFacility:
		return "施設サービス計画書（第2表）"
	case ServiceHome:
		return "居宅サービス計画書（第2表）"
	default:
		return "サービス計画書（第2表）"
	}
}

// Name returns the short display name for the service type.
func (s ServiceType) Name() string {
	switch s {
	case ServiceFacility:
		return "施設サービス"
	case ServiceHome:
		return "居宅サービス"
	default:
		return string(s)
	}
}

// PlanFields is the atomic unit both generation paths produce.
// All four fields are always strings; only ServiceContent may be empty
// when a record enters the plan collection.
type PlanFields struct {
	Needs          string `json:"needs"`
	LongTermGoal   string `json:"longTermGoal"`
	ShortTermGoal  string `json:"shortTermGoal"`
	ServiceContent string `json:"serviceContent"`
}

// CarePlanItem is one row of the 第2表: PlanFields plus the category it
// was generated from. Items have no persistent identity of their own;
// position in the collection is the only handle within a session.
type CarePlanItem struct {
	CategoryName string `json:"categoryName"`
	PlanFields
}

// AssessmentEntry accumulates one category's checked items and free-text
// detail. CheckedItems preserves the category's checklist order.
type AssessmentEntry struct {
	CheckedItems []string `json:"checkedItems"`
	DetailText   string   `json:"detailText"`
}

// HasData reports whether the entry carries any assessment signal.
func (e AssessmentEntry) HasData() bool {
	return len(e.CheckedItems) > 0 || e.DetailText != ""
}

// User is a registered case subject. Initials only; the tool stores no
// full names.
type User struct {
	ID        string `json:"id"`
	Initial   string `json:"initial"`
	Age       int    `json:"age"`
	CareLevel string `json:"careLevel"`
	CreatedAt string `json:"createdAt"` // RFC3339
}

// SavedPlan is a persisted care plan together with the assessment
// snapshot it was generated from.
type SavedPlan struct {
	ID                 string                     `json:"id"`
	UserID             string                     `json:"userId"`
	ServiceType        ServiceType                `json:"serviceType"`
	Items              []CarePlanItem             `json:"items"`
	AssessmentSnapshot map[string]AssessmentEntry `json:"assessmentSnapshot"`
	CreatedAt          string                     `json:"createdAt"` // RFC3339
	UpdatedAt          string                     `json:"updatedAt"` // RFC3339
}

// ProgressSnapshot is a partial assessment saved for later resumption.
type ProgressSnapshot struct {
	Assessment    map[string]AssessmentEntry `json:"assessment"`
	ServiceType   ServiceType                `json:"serviceType"`
	CategoryIndex int                        `json:"categoryIndex"`
	SavedAt       string                     `json:"savedAt"` // RFC3339
}

// SessionState is the live working set carried in a backup envelope.
type SessionState struct {
	Assessment    map[string]AssessmentEntry `json:"assessmentData"`
	CarePlanItems []CarePlanItem             `json:"carePlanItems"`
	ServiceType   ServiceType                `json:"selectedServiceType"`
	CurrentUserID string                     `json:"currentUserId"`
}

// BackupEnvelope is the device-sync export format. Version is fixed at
// "1.0"; restore merges by id rather than replacing wholesale.
type BackupEnvelope struct {
	Version    string     `json:"version"`
	ExportedAt string     `json:"exportedAt"` // RFC3339
	Data       BackupData `json:"data"`
}

// BackupData is the payload of a BackupEnvelope.
type BackupData struct {
	Users            []User            `json:"users"`
	Plans            []SavedPlan       `json:"plans"`
	RequiredServices map[string]string `json:"requiredServices"`
	CurrentSession   *SessionState     `json:"currentSession,omitempty"`
}
