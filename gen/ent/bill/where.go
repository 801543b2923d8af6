// Code generated by ent, DO NOT EDIT.

package bill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldUserID, v))
}

// ServiceProviderID applies equality check predicate on the "service_provider_id" field. It's identical to ServiceProviderIDEQ.
func ServiceProviderID(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldServiceProviderID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDate, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmount, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDescription, v))
}

// InboxItemID applies equality check predicate on the "inbox_item_id" field. It's identical to InboxItemIDEQ.
func InboxItemID(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldInboxItemID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldState, v))
}

// CreatedDate applies equality check predicate on the "created_date" field. It's identical to CreatedDateEQ.
func CreatedDate(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedDate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldUserID, v))
}

// ServiceProviderIDEQ applies the EQ predicate on the "service_provider_id" field.
func ServiceProviderIDEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldServiceProviderID, v))
}

// ServiceProviderIDNEQ applies the NEQ predicate on the "service_provider_id" field.
func ServiceProviderIDNEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldServiceProviderID, v))
}

// ServiceProviderIDIn applies the In predicate on the "service_provider_id" field.
func ServiceProviderIDIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldServiceProviderID, vs...))
}

// ServiceProviderIDNotIn applies the NotIn predicate on the "service_provider_id" field.
func ServiceProviderIDNotIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldServiceProviderID, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldDate, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldAmount, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldDescription, v))
}

// InboxItemIDEQ applies the EQ predicate on the "inbox_item_id" field.
func InboxItemIDEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldInboxItemID, v))
}

// InboxItemIDNEQ applies the NEQ predicate on the "inbox_item_id" field.
func InboxItemIDNEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldInboxItemID, v))
}

// InboxItemIDIn applies the In predicate on the "inbox_item_id" field.
func InboxItemIDIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldInboxItemID, vs...))
}

// InboxItemIDNotIn applies the NotIn predicate on the "inbox_item_id" field.
func InboxItemIDNotIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldInboxItemID, vs...))
}

// InboxItemIDGT applies the GT predicate on the "inbox_item_id" field.
func InboxItemIDGT(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldInboxItemID, v))
}

// InboxItemIDGTE applies the GTE predicate on the "inbox_item_id" field.
func InboxItemIDGTE(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldInboxItemID, v))
}

// InboxItemIDLT applies the LT predicate on the "inbox_item_id" field.
func InboxItemIDLT(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldInboxItemID, v))
}

// InboxItemIDLTE applies the LTE predicate on the "inbox_item_id" field.
func InboxItemIDLTE(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldInboxItemID, v))
}

// InboxItemIDIsNil applies the IsNil predicate on the "inbox_item_id" field.
func InboxItemIDIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldInboxItemID))
}

// InboxItemIDNotNil applies the NotNil predicate on the "inbox_item_id" field.
func InboxItemIDNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldInboxItemID))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldState, v))
}

// CreatedDateEQ applies the EQ predicate on the "created_date" field.
func CreatedDateEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedDate, v))
}

// CreatedDateNEQ applies the NEQ predicate on the "created_date" field.
func CreatedDateNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCreatedDate, v))
}

// CreatedDateIn applies the In predicate on the "created_date" field.
func CreatedDateIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCreatedDate, vs...))
}

// CreatedDateNotIn applies the NotIn predicate on the "created_date" field.
func CreatedDateNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCreatedDate, vs...))
}

// CreatedDateGT applies the GT predicate on the "created_date" field.
func CreatedDateGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCreatedDate, v))
}

// CreatedDateGTE applies the GTE predicate on the "created_date" field.
func CreatedDateGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCreatedDate, v))
}

// CreatedDateLT applies the LT predicate on the "created_date" field.
func CreatedDateLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCreatedDate, v))
}

// CreatedDateLTE applies the LTE predicate on the "created_date" field.
func CreatedDateLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCreatedDate, v))
}

// HasServiceProvider applies the HasEdge predicate on the "service_provider" edge.
func HasServiceProvider() predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ServiceProviderTable, ServiceProviderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServiceProviderWith applies the HasEdge predicate on the "service_provider" edge with a given conditions (other predicates).
func HasServiceProviderWith(preds ...predicate.ServiceProvider) predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := newServiceProviderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.NotPredicates(p))
}
