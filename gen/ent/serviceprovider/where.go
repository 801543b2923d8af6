// Code generated by ent, DO NOT EDIT.

package serviceprovider

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldName, v))
}

// Avatar applies equality check predicate on the "avatar" field. It's identical to AvatarEQ.
func Avatar(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldAvatar, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldComment, v))
}

// CommentForOcr applies equality check predicate on the "comment_for_ocr" field. It's identical to CommentForOcrEQ.
func CommentForOcr(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldCommentForOcr, v))
}

// Regular applies equality check predicate on the "regular" field. It's identical to RegularEQ.
func Regular(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldRegular, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldState, v))
}

// CreatedDate applies equality check predicate on the "created_date" field. It's identical to CreatedDateEQ.
func CreatedDate(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldCreatedDate, v))
}

// ModifiedDate applies equality check predicate on the "modified_date" field. It's identical to ModifiedDateEQ.
func ModifiedDate(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldModifiedDate, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContainsFold(FieldName, v))
}

// AvatarEQ applies the EQ predicate on the "avatar" field.
func AvatarEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldAvatar, v))
}

// AvatarNEQ applies the NEQ predicate on the "avatar" field.
func AvatarNEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNEQ(FieldAvatar, v))
}

// AvatarIn applies the In predicate on the "avatar" field.
func AvatarIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIn(FieldAvatar, vs...))
}

// AvatarNotIn applies the NotIn predicate on the "avatar" field.
func AvatarNotIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotIn(FieldAvatar, vs...))
}

// AvatarGT applies the GT predicate on the "avatar" field.
func AvatarGT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGT(FieldAvatar, v))
}

// AvatarGTE applies the GTE predicate on the "avatar" field.
func AvatarGTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGTE(FieldAvatar, v))
}

// AvatarLT applies the LT predicate on the "avatar" field.
func AvatarLT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLT(FieldAvatar, v))
}

// AvatarLTE applies the LTE predicate on the "avatar" field.
func AvatarLTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLTE(FieldAvatar, v))
}

// AvatarContains applies the Contains predicate on the "avatar" field.
func AvatarContains(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContains(FieldAvatar, v))
}

// AvatarHasPrefix applies the HasPrefix predicate on the "avatar" field.
func AvatarHasPrefix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasPrefix(FieldAvatar, v))
}

// AvatarHasSuffix applies the HasSuffix predicate on the "avatar" field.
func AvatarHasSuffix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasSuffix(FieldAvatar, v))
}

// AvatarIsNil applies the IsNil predicate on the "avatar" field.
func AvatarIsNil() predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIsNull(FieldAvatar))
}

// AvatarNotNil applies the NotNil predicate on the "avatar" field.
func AvatarNotNil() predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotNull(FieldAvatar))
}

// AvatarEqualFold applies the EqualFold predicate on the "avatar" field.
func AvatarEqualFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEqualFold(FieldAvatar, v))
}

// AvatarContainsFold applies the ContainsFold predicate on the "avatar" field.
func AvatarContainsFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContainsFold(FieldAvatar, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasSuffix(FieldComment, v))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContainsFold(FieldComment, v))
}

// CommentForOcrEQ applies the EQ predicate on the "comment_for_ocr" field.
func CommentForOcrEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldCommentForOcr, v))
}

// CommentForOcrNEQ applies the NEQ predicate on the "comment_for_ocr" field.
func CommentForOcrNEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNEQ(FieldCommentForOcr, v))
}

// CommentForOcrIn applies the In predicate on the "comment_for_ocr" field.
func CommentForOcrIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIn(FieldCommentForOcr, vs...))
}

// CommentForOcrNotIn applies the NotIn predicate on the "comment_for_ocr" field.
func CommentForOcrNotIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotIn(FieldCommentForOcr, vs...))
}

// CommentForOcrGT applies the GT predicate on the "comment_for_ocr" field.
func CommentForOcrGT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGT(FieldCommentForOcr, v))
}

// CommentForOcrGTE applies the GTE predicate on the "comment_for_ocr" field.
func CommentForOcrGTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGTE(FieldCommentForOcr, v))
}

// CommentForOcrLT applies the LT predicate on the "comment_for_ocr" field.
func CommentForOcrLT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLT(FieldCommentForOcr, v))
}

// CommentForOcrLTE applies the LTE predicate on the "comment_for_ocr" field.
func CommentForOcrLTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLTE(FieldCommentForOcr, v))
}

// CommentForOcrContains applies the Contains predicate on the "comment_for_ocr" field.
func CommentForOcrContains(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContains(FieldCommentForOcr, v))
}

// CommentForOcrHasPrefix applies the HasPrefix predicate on the "comment_for_ocr" field.
func CommentForOcrHasPrefix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasPrefix(FieldCommentForOcr, v))
}

// CommentForOcrHasSuffix applies the HasSuffix predicate on the "comment_for_ocr" field.
func CommentForOcrHasSuffix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasSuffix(FieldCommentForOcr, v))
}

// CommentForOcrEqualFold applies the EqualFold predicate on the "comment_for_ocr" field.
func CommentForOcrEqualFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEqualFold(FieldCommentForOcr, v))
}

// CommentForOcrContainsFold applies the ContainsFold predicate on the "comment_for_ocr" field.
func CommentForOcrContainsFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContainsFold(FieldCommentForOcr, v))
}

// RegularEQ applies the EQ predicate on the "regular" field.
func RegularEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldRegular, v))
}

// RegularNEQ applies the NEQ predicate on the "regular" field.
func RegularNEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNEQ(FieldRegular, v))
}

// RegularIn applies the In predicate on the "regular" field.
func RegularIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIn(FieldRegular, vs...))
}

// RegularNotIn applies the NotIn predicate on the "regular" field.
func RegularNotIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotIn(FieldRegular, vs...))
}

// RegularGT applies the GT predicate on the "regular" field.
func RegularGT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGT(FieldRegular, v))
}

// RegularGTE applies the GTE predicate on the "regular" field.
func RegularGTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGTE(FieldRegular, v))
}

// RegularLT applies the LT predicate on the "regular" field.
func RegularLT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLT(FieldRegular, v))
}

// RegularLTE applies the LTE predicate on the "regular" field.
func RegularLTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLTE(FieldRegular, v))
}

// RegularContains applies the Contains predicate on the "regular" field.
func RegularContains(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContains(FieldRegular, v))
}

// RegularHasPrefix applies the HasPrefix predicate on the "regular" field.
func RegularHasPrefix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasPrefix(FieldRegular, v))
}

// RegularHasSuffix applies the HasSuffix predicate on the "regular" field.
func RegularHasSuffix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasSuffix(FieldRegular, v))
}

// RegularEqualFold applies the EqualFold predicate on the "regular" field.
func RegularEqualFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEqualFold(FieldRegular, v))
}

// RegularContainsFold applies the ContainsFold predicate on the "regular" field.
func RegularContainsFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContainsFold(FieldRegular, v))
}

// CustomFieldsIsNil applies the IsNil predicate on the "custom_fields" field.
func CustomFieldsIsNil() predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIsNull(FieldCustomFields))
}

// CustomFieldsNotNil applies the NotNil predicate on the "custom_fields" field.
func CustomFieldsNotNil() predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotNull(FieldCustomFields))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldContainsFold(FieldState, v))
}

// CreatedDateEQ applies the EQ predicate on the "created_date" field.
func CreatedDateEQ(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldCreatedDate, v))
}

// CreatedDateNEQ applies the NEQ predicate on the "created_date" field.
func CreatedDateNEQ(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNEQ(FieldCreatedDate, v))
}

// CreatedDateIn applies the In predicate on the "created_date" field.
func CreatedDateIn(vs ...time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIn(FieldCreatedDate, vs...))
}

// CreatedDateNotIn applies the NotIn predicate on the "created_date" field.
func CreatedDateNotIn(vs ...time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotIn(FieldCreatedDate, vs...))
}

// CreatedDateGT applies the GT predicate on the "created_date" field.
func CreatedDateGT(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGT(FieldCreatedDate, v))
}

// CreatedDateGTE applies the GTE predicate on the "created_date" field.
func CreatedDateGTE(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGTE(FieldCreatedDate, v))
}

// CreatedDateLT applies the LT predicate on the "created_date" field.
func CreatedDateLT(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLT(FieldCreatedDate, v))
}

// CreatedDateLTE applies the LTE predicate on the "created_date" field.
func CreatedDateLTE(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLTE(FieldCreatedDate, v))
}

// ModifiedDateEQ applies the EQ predicate on the "modified_date" field.
func ModifiedDateEQ(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldEQ(FieldModifiedDate, v))
}

// ModifiedDateNEQ applies the NEQ predicate on the "modified_date" field.
func ModifiedDateNEQ(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNEQ(FieldModifiedDate, v))
}

// ModifiedDateIn applies the In predicate on the "modified_date" field.
func ModifiedDateIn(vs ...time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldIn(FieldModifiedDate, vs...))
}

// ModifiedDateNotIn applies the NotIn predicate on the "modified_date" field.
func ModifiedDateNotIn(vs ...time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldNotIn(FieldModifiedDate, vs...))
}

// ModifiedDateGT applies the GT predicate on the "modified_date" field.
func ModifiedDateGT(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGT(FieldModifiedDate, v))
}

// ModifiedDateGTE applies the GTE predicate on the "modified_date" field.
func ModifiedDateGTE(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldGTE(FieldModifiedDate, v))
}

// ModifiedDateLT applies the LT predicate on the "modified_date" field.
func ModifiedDateLT(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLT(FieldModifiedDate, v))
}

// ModifiedDateLTE applies the LTE predicate on the "modified_date" field.
func ModifiedDateLTE(v time.Time) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.FieldLTE(FieldModifiedDate, v))
}

// HasBills applies the HasEdge predicate on the "bills" edge.
func HasBills() predicate.ServiceProvider {
	return predicate.ServiceProvider(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BillsTable, BillsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBillsWith applies the HasEdge predicate on the "bills" edge with a given conditions (other predicates).
func HasBillsWith(preds ...predicate.Bill) predicate.ServiceProvider {
	return predicate.ServiceProvider(func(s *sql.Selector) {
		step := newBillsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReceipts applies the HasEdge predicate on the "receipts" edge.
func HasReceipts() predicate.ServiceProvider {
	return predicate.ServiceProvider(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReceiptsTable, ReceiptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReceiptsWith applies the HasEdge predicate on the "receipts" edge with a given conditions (other predicates).
func HasReceiptsWith(preds ...predicate.Receipt) predicate.ServiceProvider {
	return predicate.ServiceProvider(func(s *sql.Selector) {
		step := newReceiptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServiceProvider) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServiceProvider) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServiceProvider) predicate.ServiceProvider {
	return predicate.ServiceProvider(sql.NotPredicates(p))
}
