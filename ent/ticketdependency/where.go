// Code generated by ent, DO NOT EDIT.

package ticketdependency

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/buildloop/foundry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLTE(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldTicketID, v))
}

// DependsOn applies equality check predicate on the "depends_on" field. It's identical to DependsOnEQ.
func DependsOn(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldDependsOn, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldContainsFold(FieldTicketID, v))
}

// DependsOnEQ applies the EQ predicate on the "depends_on" field.
func DependsOnEQ(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldDependsOn, v))
}

// DependsOnNEQ applies the NEQ predicate on the "depends_on" field.
func DependsOnNEQ(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNEQ(FieldDependsOn, v))
}

// DependsOnIn applies the In predicate on the "depends_on" field.
func DependsOnIn(vs ...string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldIn(FieldDependsOn, vs...))
}

// DependsOnNotIn applies the NotIn predicate on the "depends_on" field.
func DependsOnNotIn(vs ...string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNotIn(FieldDependsOn, vs...))
}

// DependsOnGT applies the GT predicate on the "depends_on" field.
func DependsOnGT(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGT(FieldDependsOn, v))
}

// DependsOnGTE applies the GTE predicate on the "depends_on" field.
func DependsOnGTE(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGTE(FieldDependsOn, v))
}

// DependsOnLT applies the LT predicate on the "depends_on" field.
func DependsOnLT(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLT(FieldDependsOn, v))
}

// DependsOnLTE applies the LTE predicate on the "depends_on" field.
func DependsOnLTE(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLTE(FieldDependsOn, v))
}

// DependsOnContains applies the Contains predicate on the "depends_on" field.
func DependsOnContains(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldContains(FieldDependsOn, v))
}

// DependsOnHasPrefix applies the HasPrefix predicate on the "depends_on" field.
func DependsOnHasPrefix(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldHasPrefix(FieldDependsOn, v))
}

// DependsOnHasSuffix applies the HasSuffix predicate on the "depends_on" field.
func DependsOnHasSuffix(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldHasSuffix(FieldDependsOn, v))
}

// DependsOnEqualFold applies the EqualFold predicate on the "depends_on" field.
func DependsOnEqualFold(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEqualFold(FieldDependsOn, v))
}

// DependsOnContainsFold applies the ContainsFold predicate on the "depends_on" field.
func DependsOnContainsFold(v string) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldContainsFold(FieldDependsOn, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TicketDependency) predicate.TicketDependency {
	return predicate.TicketDependency(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TicketDependency) predicate.TicketDependency {
	return predicate.TicketDependency(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TicketDependency) predicate.TicketDependency {
	return predicate.TicketDependency(sql.NotPredicates(p))
}
