// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/buildloop/foundry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTenantID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProjectID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldSessionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// Epic applies equality check predicate on the "epic" field. It's identical to EpicEQ.
func Epic(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldEpic, v))
}

// Assignee applies equality check predicate on the "assignee" field. It's identical to AssigneeEQ.
func Assignee(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAssignee, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldBranchName, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldPrURL, v))
}

// RejectionCount applies equality check predicate on the "rejection_count" field. It's identical to RejectionCountEQ.
func RejectionCount(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRejectionCount, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryCount, v))
}

// RetryAfter applies equality check predicate on the "retry_after" field. It's identical to RetryAfterEQ.
func RetryAfter(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryAfter, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAttempt, v))
}

// LeaseExpires applies equality check predicate on the "lease_expires" field. It's identical to LeaseExpiresEQ.
func LeaseExpires(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLeaseExpires, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLastHeartbeat, v))
}

// HeartbeatCount applies equality check predicate on the "heartbeat_count" field. It's identical to HeartbeatCountEQ.
func HeartbeatCount(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldHeartbeatCount, v))
}

// FailureClass applies equality check predicate on the "failure_class" field. It's identical to FailureClassEQ.
func FailureClass(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldFailureClass, v))
}

// HoldReason applies equality check predicate on the "hold_reason" field. It's identical to HoldReasonEQ.
func HoldReason(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldHoldReason, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTraceID, v))
}

// RepoURL applies equality check predicate on the "repo_url" field. It's identical to RepoURLEQ.
func RepoURL(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRepoURL, v))
}

// LeaseSeconds applies equality check predicate on the "lease_seconds" field. It's identical to LeaseSecondsEQ.
func LeaseSeconds(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLeaseSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTenantID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldProjectID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldSessionID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldDescription, v))
}

// AcceptanceCriteriaIsNil applies the IsNil predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldAcceptanceCriteria))
}

// AcceptanceCriteriaNotNil applies the NotNil predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldAcceptanceCriteria))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldState, vs...))
}

// EpicEQ applies the EQ predicate on the "epic" field.
func EpicEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldEpic, v))
}

// EpicNEQ applies the NEQ predicate on the "epic" field.
func EpicNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldEpic, v))
}

// EpicIn applies the In predicate on the "epic" field.
func EpicIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldEpic, vs...))
}

// EpicNotIn applies the NotIn predicate on the "epic" field.
func EpicNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldEpic, vs...))
}

// EpicGT applies the GT predicate on the "epic" field.
func EpicGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldEpic, v))
}

// EpicGTE applies the GTE predicate on the "epic" field.
func EpicGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldEpic, v))
}

// EpicLT applies the LT predicate on the "epic" field.
func EpicLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldEpic, v))
}

// EpicLTE applies the LTE predicate on the "epic" field.
func EpicLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldEpic, v))
}

// EpicContains applies the Contains predicate on the "epic" field.
func EpicContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldEpic, v))
}

// EpicHasPrefix applies the HasPrefix predicate on the "epic" field.
func EpicHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldEpic, v))
}

// EpicHasSuffix applies the HasSuffix predicate on the "epic" field.
func EpicHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldEpic, v))
}

// EpicIsNil applies the IsNil predicate on the "epic" field.
func EpicIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldEpic))
}

// EpicNotNil applies the NotNil predicate on the "epic" field.
func EpicNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldEpic))
}

// EpicEqualFold applies the EqualFold predicate on the "epic" field.
func EpicEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldEpic, v))
}

// EpicContainsFold applies the ContainsFold predicate on the "epic" field.
func EpicContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldEpic, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldScope, vs...))
}

// FileHintsIsNil applies the IsNil predicate on the "file_hints" field.
func FileHintsIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldFileHints))
}

// FileHintsNotNil applies the NotNil predicate on the "file_hints" field.
func FileHintsNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldFileHints))
}

// AssigneeEQ applies the EQ predicate on the "assignee" field.
func AssigneeEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAssignee, v))
}

// AssigneeNEQ applies the NEQ predicate on the "assignee" field.
func AssigneeNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldAssignee, v))
}

// AssigneeIn applies the In predicate on the "assignee" field.
func AssigneeIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldAssignee, vs...))
}

// AssigneeNotIn applies the NotIn predicate on the "assignee" field.
func AssigneeNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldAssignee, vs...))
}

// AssigneeGT applies the GT predicate on the "assignee" field.
func AssigneeGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldAssignee, v))
}

// AssigneeGTE applies the GTE predicate on the "assignee" field.
func AssigneeGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldAssignee, v))
}

// AssigneeLT applies the LT predicate on the "assignee" field.
func AssigneeLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldAssignee, v))
}

// AssigneeLTE applies the LTE predicate on the "assignee" field.
func AssigneeLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldAssignee, v))
}

// AssigneeContains applies the Contains predicate on the "assignee" field.
func AssigneeContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldAssignee, v))
}

// AssigneeHasPrefix applies the HasPrefix predicate on the "assignee" field.
func AssigneeHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldAssignee, v))
}

// AssigneeHasSuffix applies the HasSuffix predicate on the "assignee" field.
func AssigneeHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldAssignee, v))
}

// AssigneeIsNil applies the IsNil predicate on the "assignee" field.
func AssigneeIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldAssignee))
}

// AssigneeNotNil applies the NotNil predicate on the "assignee" field.
func AssigneeNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldAssignee))
}

// AssigneeEqualFold applies the EqualFold predicate on the "assignee" field.
func AssigneeEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldAssignee, v))
}

// AssigneeContainsFold applies the ContainsFold predicate on the "assignee" field.
func AssigneeContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldAssignee, v))
}

// AssigneeKindEQ applies the EQ predicate on the "assignee_kind" field.
func AssigneeKindEQ(v AssigneeKind) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAssigneeKind, v))
}

// AssigneeKindNEQ applies the NEQ predicate on the "assignee_kind" field.
func AssigneeKindNEQ(v AssigneeKind) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldAssigneeKind, v))
}

// AssigneeKindIn applies the In predicate on the "assignee_kind" field.
func AssigneeKindIn(vs ...AssigneeKind) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldAssigneeKind, vs...))
}

// AssigneeKindNotIn applies the NotIn predicate on the "assignee_kind" field.
func AssigneeKindNotIn(vs ...AssigneeKind) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldAssigneeKind, vs...))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldBranchName, v))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldPrURL, v))
}

// RejectionCountEQ applies the EQ predicate on the "rejection_count" field.
func RejectionCountEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRejectionCount, v))
}

// RejectionCountNEQ applies the NEQ predicate on the "rejection_count" field.
func RejectionCountNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRejectionCount, v))
}

// RejectionCountIn applies the In predicate on the "rejection_count" field.
func RejectionCountIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRejectionCount, vs...))
}

// RejectionCountNotIn applies the NotIn predicate on the "rejection_count" field.
func RejectionCountNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRejectionCount, vs...))
}

// RejectionCountGT applies the GT predicate on the "rejection_count" field.
func RejectionCountGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRejectionCount, v))
}

// RejectionCountGTE applies the GTE predicate on the "rejection_count" field.
func RejectionCountGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRejectionCount, v))
}

// RejectionCountLT applies the LT predicate on the "rejection_count" field.
func RejectionCountLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRejectionCount, v))
}

// RejectionCountLTE applies the LTE predicate on the "rejection_count" field.
func RejectionCountLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRejectionCount, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRetryCount, v))
}

// RetryAfterEQ applies the EQ predicate on the "retry_after" field.
func RetryAfterEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryAfter, v))
}

// RetryAfterNEQ applies the NEQ predicate on the "retry_after" field.
func RetryAfterNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRetryAfter, v))
}

// RetryAfterIn applies the In predicate on the "retry_after" field.
func RetryAfterIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRetryAfter, vs...))
}

// RetryAfterNotIn applies the NotIn predicate on the "retry_after" field.
func RetryAfterNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRetryAfter, vs...))
}

// RetryAfterGT applies the GT predicate on the "retry_after" field.
func RetryAfterGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRetryAfter, v))
}

// RetryAfterGTE applies the GTE predicate on the "retry_after" field.
func RetryAfterGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRetryAfter, v))
}

// RetryAfterLT applies the LT predicate on the "retry_after" field.
func RetryAfterLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRetryAfter, v))
}

// RetryAfterLTE applies the LTE predicate on the "retry_after" field.
func RetryAfterLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRetryAfter, v))
}

// RetryAfterIsNil applies the IsNil predicate on the "retry_after" field.
func RetryAfterIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldRetryAfter))
}

// RetryAfterNotNil applies the NotNil predicate on the "retry_after" field.
func RetryAfterNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldRetryAfter))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldAttempt, v))
}

// CriticFeedbackIsNil applies the IsNil predicate on the "critic_feedback" field.
func CriticFeedbackIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldCriticFeedback))
}

// CriticFeedbackNotNil applies the NotNil predicate on the "critic_feedback" field.
func CriticFeedbackNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldCriticFeedback))
}

// FilesInvolvedIsNil applies the IsNil predicate on the "files_involved" field.
func FilesInvolvedIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldFilesInvolved))
}

// FilesInvolvedNotNil applies the NotNil predicate on the "files_involved" field.
func FilesInvolvedNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldFilesInvolved))
}

// LeaseExpiresEQ applies the EQ predicate on the "lease_expires" field.
func LeaseExpiresEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLeaseExpires, v))
}

// LeaseExpiresNEQ applies the NEQ predicate on the "lease_expires" field.
func LeaseExpiresNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldLeaseExpires, v))
}

// LeaseExpiresIn applies the In predicate on the "lease_expires" field.
func LeaseExpiresIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldLeaseExpires, vs...))
}

// LeaseExpiresNotIn applies the NotIn predicate on the "lease_expires" field.
func LeaseExpiresNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldLeaseExpires, vs...))
}

// LeaseExpiresGT applies the GT predicate on the "lease_expires" field.
func LeaseExpiresGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldLeaseExpires, v))
}

// LeaseExpiresGTE applies the GTE predicate on the "lease_expires" field.
func LeaseExpiresGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldLeaseExpires, v))
}

// LeaseExpiresLT applies the LT predicate on the "lease_expires" field.
func LeaseExpiresLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldLeaseExpires, v))
}

// LeaseExpiresLTE applies the LTE predicate on the "lease_expires" field.
func LeaseExpiresLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldLeaseExpires, v))
}

// LeaseExpiresIsNil applies the IsNil predicate on the "lease_expires" field.
func LeaseExpiresIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldLeaseExpires))
}

// LeaseExpiresNotNil applies the NotNil predicate on the "lease_expires" field.
func LeaseExpiresNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldLeaseExpires))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldLastHeartbeat))
}

// HeartbeatCountEQ applies the EQ predicate on the "heartbeat_count" field.
func HeartbeatCountEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldHeartbeatCount, v))
}

// HeartbeatCountNEQ applies the NEQ predicate on the "heartbeat_count" field.
func HeartbeatCountNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldHeartbeatCount, v))
}

// HeartbeatCountIn applies the In predicate on the "heartbeat_count" field.
func HeartbeatCountIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldHeartbeatCount, vs...))
}

// HeartbeatCountNotIn applies the NotIn predicate on the "heartbeat_count" field.
func HeartbeatCountNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldHeartbeatCount, vs...))
}

// HeartbeatCountGT applies the GT predicate on the "heartbeat_count" field.
func HeartbeatCountGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldHeartbeatCount, v))
}

// HeartbeatCountGTE applies the GTE predicate on the "heartbeat_count" field.
func HeartbeatCountGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldHeartbeatCount, v))
}

// HeartbeatCountLT applies the LT predicate on the "heartbeat_count" field.
func HeartbeatCountLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldHeartbeatCount, v))
}

// HeartbeatCountLTE applies the LTE predicate on the "heartbeat_count" field.
func HeartbeatCountLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldHeartbeatCount, v))
}

// FailureClassEQ applies the EQ predicate on the "failure_class" field.
func FailureClassEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldFailureClass, v))
}

// FailureClassNEQ applies the NEQ predicate on the "failure_class" field.
func FailureClassNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldFailureClass, v))
}

// FailureClassIn applies the In predicate on the "failure_class" field.
func FailureClassIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldFailureClass, vs...))
}

// FailureClassNotIn applies the NotIn predicate on the "failure_class" field.
func FailureClassNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldFailureClass, vs...))
}

// FailureClassGT applies the GT predicate on the "failure_class" field.
func FailureClassGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldFailureClass, v))
}

// FailureClassGTE applies the GTE predicate on the "failure_class" field.
func FailureClassGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldFailureClass, v))
}

// FailureClassLT applies the LT predicate on the "failure_class" field.
func FailureClassLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldFailureClass, v))
}

// FailureClassLTE applies the LTE predicate on the "failure_class" field.
func FailureClassLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldFailureClass, v))
}

// FailureClassContains applies the Contains predicate on the "failure_class" field.
func FailureClassContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldFailureClass, v))
}

// FailureClassHasPrefix applies the HasPrefix predicate on the "failure_class" field.
func FailureClassHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldFailureClass, v))
}

// FailureClassHasSuffix applies the HasSuffix predicate on the "failure_class" field.
func FailureClassHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldFailureClass, v))
}

// FailureClassIsNil applies the IsNil predicate on the "failure_class" field.
func FailureClassIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldFailureClass))
}

// FailureClassNotNil applies the NotNil predicate on the "failure_class" field.
func FailureClassNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldFailureClass))
}

// FailureClassEqualFold applies the EqualFold predicate on the "failure_class" field.
func FailureClassEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldFailureClass, v))
}

// FailureClassContainsFold applies the ContainsFold predicate on the "failure_class" field.
func FailureClassContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldFailureClass, v))
}

// HoldReasonEQ applies the EQ predicate on the "hold_reason" field.
func HoldReasonEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldHoldReason, v))
}

// HoldReasonNEQ applies the NEQ predicate on the "hold_reason" field.
func HoldReasonNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldHoldReason, v))
}

// HoldReasonIn applies the In predicate on the "hold_reason" field.
func HoldReasonIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldHoldReason, vs...))
}

// HoldReasonNotIn applies the NotIn predicate on the "hold_reason" field.
func HoldReasonNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldHoldReason, vs...))
}

// HoldReasonGT applies the GT predicate on the "hold_reason" field.
func HoldReasonGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldHoldReason, v))
}

// HoldReasonGTE applies the GTE predicate on the "hold_reason" field.
func HoldReasonGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldHoldReason, v))
}

// HoldReasonLT applies the LT predicate on the "hold_reason" field.
func HoldReasonLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldHoldReason, v))
}

// HoldReasonLTE applies the LTE predicate on the "hold_reason" field.
func HoldReasonLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldHoldReason, v))
}

// HoldReasonContains applies the Contains predicate on the "hold_reason" field.
func HoldReasonContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldHoldReason, v))
}

// HoldReasonHasPrefix applies the HasPrefix predicate on the "hold_reason" field.
func HoldReasonHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldHoldReason, v))
}

// HoldReasonHasSuffix applies the HasSuffix predicate on the "hold_reason" field.
func HoldReasonHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldHoldReason, v))
}

// HoldReasonIsNil applies the IsNil predicate on the "hold_reason" field.
func HoldReasonIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldHoldReason))
}

// HoldReasonNotNil applies the NotNil predicate on the "hold_reason" field.
func HoldReasonNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldHoldReason))
}

// HoldReasonEqualFold applies the EqualFold predicate on the "hold_reason" field.
func HoldReasonEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldHoldReason, v))
}

// HoldReasonContainsFold applies the ContainsFold predicate on the "hold_reason" field.
func HoldReasonContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldHoldReason, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDIsNil applies the IsNil predicate on the "trace_id" field.
func TraceIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldTraceID))
}

// TraceIDNotNil applies the NotNil predicate on the "trace_id" field.
func TraceIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldTraceID))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTraceID, v))
}

// RepoURLEQ applies the EQ predicate on the "repo_url" field.
func RepoURLEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRepoURL, v))
}

// RepoURLNEQ applies the NEQ predicate on the "repo_url" field.
func RepoURLNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRepoURL, v))
}

// RepoURLIn applies the In predicate on the "repo_url" field.
func RepoURLIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRepoURL, vs...))
}

// RepoURLNotIn applies the NotIn predicate on the "repo_url" field.
func RepoURLNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRepoURL, vs...))
}

// RepoURLGT applies the GT predicate on the "repo_url" field.
func RepoURLGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRepoURL, v))
}

// RepoURLGTE applies the GTE predicate on the "repo_url" field.
func RepoURLGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRepoURL, v))
}

// RepoURLLT applies the LT predicate on the "repo_url" field.
func RepoURLLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRepoURL, v))
}

// RepoURLLTE applies the LTE predicate on the "repo_url" field.
func RepoURLLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRepoURL, v))
}

// RepoURLContains applies the Contains predicate on the "repo_url" field.
func RepoURLContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldRepoURL, v))
}

// RepoURLHasPrefix applies the HasPrefix predicate on the "repo_url" field.
func RepoURLHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldRepoURL, v))
}

// RepoURLHasSuffix applies the HasSuffix predicate on the "repo_url" field.
func RepoURLHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldRepoURL, v))
}

// RepoURLIsNil applies the IsNil predicate on the "repo_url" field.
func RepoURLIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldRepoURL))
}

// RepoURLNotNil applies the NotNil predicate on the "repo_url" field.
func RepoURLNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldRepoURL))
}

// RepoURLEqualFold applies the EqualFold predicate on the "repo_url" field.
func RepoURLEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldRepoURL, v))
}

// RepoURLContainsFold applies the ContainsFold predicate on the "repo_url" field.
func RepoURLContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldRepoURL, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldPriority, vs...))
}

// LeaseSecondsEQ applies the EQ predicate on the "lease_seconds" field.
func LeaseSecondsEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLeaseSeconds, v))
}

// LeaseSecondsNEQ applies the NEQ predicate on the "lease_seconds" field.
func LeaseSecondsNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldLeaseSeconds, v))
}

// LeaseSecondsIn applies the In predicate on the "lease_seconds" field.
func LeaseSecondsIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldLeaseSeconds, vs...))
}

// LeaseSecondsNotIn applies the NotIn predicate on the "lease_seconds" field.
func LeaseSecondsNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldLeaseSeconds, vs...))
}

// LeaseSecondsGT applies the GT predicate on the "lease_seconds" field.
func LeaseSecondsGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldLeaseSeconds, v))
}

// LeaseSecondsGTE applies the GTE predicate on the "lease_seconds" field.
func LeaseSecondsGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldLeaseSeconds, v))
}

// LeaseSecondsLT applies the LT predicate on the "lease_seconds" field.
func LeaseSecondsLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldLeaseSeconds, v))
}

// LeaseSecondsLTE applies the LTE predicate on the "lease_seconds" field.
func LeaseSecondsLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldLeaseSeconds, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.NotPredicates(p))
}
