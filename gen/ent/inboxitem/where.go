// Code generated by ent, DO NOT EDIT.

package inboxitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldFileID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldUserID, v))
}

// UploadedImage applies equality check predicate on the "uploaded_image" field. It's identical to UploadedImageEQ.
func UploadedImage(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldUploadedImage, v))
}

// UploadDate applies equality check predicate on the "upload_date" field. It's identical to UploadDateEQ.
func UploadDate(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldUploadDate, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldState, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldStatus, v))
}

// OcrResults applies equality check predicate on the "ocr_results" field. It's identical to OcrResultsEQ.
func OcrResults(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldOcrResults, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldFailureReason, v))
}

// LinkedEntityID applies equality check predicate on the "linked_entity_id" field. It's identical to LinkedEntityIDEQ.
func LinkedEntityID(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldLinkedEntityID, v))
}

// LinkedEntityType applies equality check predicate on the "linked_entity_type" field. It's identical to LinkedEntityTypeEQ.
func LinkedEntityType(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldLinkedEntityType, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectedAt applies equality check predicate on the "rejected_at" field. It's identical to RejectedAtEQ.
func RejectedAt(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldRejectedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldFileID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldUserID, v))
}

// UploadedImageEQ applies the EQ predicate on the "uploaded_image" field.
func UploadedImageEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldUploadedImage, v))
}

// UploadedImageNEQ applies the NEQ predicate on the "uploaded_image" field.
func UploadedImageNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldUploadedImage, v))
}

// UploadedImageIn applies the In predicate on the "uploaded_image" field.
func UploadedImageIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldUploadedImage, vs...))
}

// UploadedImageNotIn applies the NotIn predicate on the "uploaded_image" field.
func UploadedImageNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldUploadedImage, vs...))
}

// UploadedImageGT applies the GT predicate on the "uploaded_image" field.
func UploadedImageGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldUploadedImage, v))
}

// UploadedImageGTE applies the GTE predicate on the "uploaded_image" field.
func UploadedImageGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldUploadedImage, v))
}

// UploadedImageLT applies the LT predicate on the "uploaded_image" field.
func UploadedImageLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldUploadedImage, v))
}

// UploadedImageLTE applies the LTE predicate on the "uploaded_image" field.
func UploadedImageLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldUploadedImage, v))
}

// UploadedImageContains applies the Contains predicate on the "uploaded_image" field.
func UploadedImageContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldUploadedImage, v))
}

// UploadedImageHasPrefix applies the HasPrefix predicate on the "uploaded_image" field.
func UploadedImageHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldUploadedImage, v))
}

// UploadedImageHasSuffix applies the HasSuffix predicate on the "uploaded_image" field.
func UploadedImageHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldUploadedImage, v))
}

// UploadedImageEqualFold applies the EqualFold predicate on the "uploaded_image" field.
func UploadedImageEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldUploadedImage, v))
}

// UploadedImageContainsFold applies the ContainsFold predicate on the "uploaded_image" field.
func UploadedImageContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldUploadedImage, v))
}

// UploadDateEQ applies the EQ predicate on the "upload_date" field.
func UploadDateEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldUploadDate, v))
}

// UploadDateNEQ applies the NEQ predicate on the "upload_date" field.
func UploadDateNEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldUploadDate, v))
}

// UploadDateIn applies the In predicate on the "upload_date" field.
func UploadDateIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldUploadDate, vs...))
}

// UploadDateNotIn applies the NotIn predicate on the "upload_date" field.
func UploadDateNotIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldUploadDate, vs...))
}

// UploadDateGT applies the GT predicate on the "upload_date" field.
func UploadDateGT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldUploadDate, v))
}

// UploadDateGTE applies the GTE predicate on the "upload_date" field.
func UploadDateGTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldUploadDate, v))
}

// UploadDateLT applies the LT predicate on the "upload_date" field.
func UploadDateLT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldUploadDate, v))
}

// UploadDateLTE applies the LTE predicate on the "upload_date" field.
func UploadDateLTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldUploadDate, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldState, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldStatus, v))
}

// OcrResultsEQ applies the EQ predicate on the "ocr_results" field.
func OcrResultsEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldOcrResults, v))
}

// OcrResultsNEQ applies the NEQ predicate on the "ocr_results" field.
func OcrResultsNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldOcrResults, v))
}

// OcrResultsIn applies the In predicate on the "ocr_results" field.
func OcrResultsIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldOcrResults, vs...))
}

// OcrResultsNotIn applies the NotIn predicate on the "ocr_results" field.
func OcrResultsNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldOcrResults, vs...))
}

// OcrResultsGT applies the GT predicate on the "ocr_results" field.
func OcrResultsGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldOcrResults, v))
}

// OcrResultsGTE applies the GTE predicate on the "ocr_results" field.
func OcrResultsGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldOcrResults, v))
}

// OcrResultsLT applies the LT predicate on the "ocr_results" field.
func OcrResultsLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldOcrResults, v))
}

// OcrResultsLTE applies the LTE predicate on the "ocr_results" field.
func OcrResultsLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldOcrResults, v))
}

// OcrResultsContains applies the Contains predicate on the "ocr_results" field.
func OcrResultsContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldOcrResults, v))
}

// OcrResultsHasPrefix applies the HasPrefix predicate on the "ocr_results" field.
func OcrResultsHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldOcrResults, v))
}

// OcrResultsHasSuffix applies the HasSuffix predicate on the "ocr_results" field.
func OcrResultsHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldOcrResults, v))
}

// OcrResultsIsNil applies the IsNil predicate on the "ocr_results" field.
func OcrResultsIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldOcrResults))
}

// OcrResultsNotNil applies the NotNil predicate on the "ocr_results" field.
func OcrResultsNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldOcrResults))
}

// OcrResultsEqualFold applies the EqualFold predicate on the "ocr_results" field.
func OcrResultsEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldOcrResults, v))
}

// OcrResultsContainsFold applies the ContainsFold predicate on the "ocr_results" field.
func OcrResultsContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldOcrResults, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldFailureReason, v))
}

// LinkedEntityIDEQ applies the EQ predicate on the "linked_entity_id" field.
func LinkedEntityIDEQ(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldLinkedEntityID, v))
}

// LinkedEntityIDNEQ applies the NEQ predicate on the "linked_entity_id" field.
func LinkedEntityIDNEQ(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldLinkedEntityID, v))
}

// LinkedEntityIDIn applies the In predicate on the "linked_entity_id" field.
func LinkedEntityIDIn(vs ...uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldLinkedEntityID, vs...))
}

// LinkedEntityIDNotIn applies the NotIn predicate on the "linked_entity_id" field.
func LinkedEntityIDNotIn(vs ...uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldLinkedEntityID, vs...))
}

// LinkedEntityIDGT applies the GT predicate on the "linked_entity_id" field.
func LinkedEntityIDGT(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldLinkedEntityID, v))
}

// LinkedEntityIDGTE applies the GTE predicate on the "linked_entity_id" field.
func LinkedEntityIDGTE(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldLinkedEntityID, v))
}

// LinkedEntityIDLT applies the LT predicate on the "linked_entity_id" field.
func LinkedEntityIDLT(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldLinkedEntityID, v))
}

// LinkedEntityIDLTE applies the LTE predicate on the "linked_entity_id" field.
func LinkedEntityIDLTE(v uuid.UUID) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldLinkedEntityID, v))
}

// LinkedEntityIDIsNil applies the IsNil predicate on the "linked_entity_id" field.
func LinkedEntityIDIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldLinkedEntityID))
}

// LinkedEntityIDNotNil applies the NotNil predicate on the "linked_entity_id" field.
func LinkedEntityIDNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldLinkedEntityID))
}

// LinkedEntityTypeEQ applies the EQ predicate on the "linked_entity_type" field.
func LinkedEntityTypeEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldLinkedEntityType, v))
}

// LinkedEntityTypeNEQ applies the NEQ predicate on the "linked_entity_type" field.
func LinkedEntityTypeNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldLinkedEntityType, v))
}

// LinkedEntityTypeIn applies the In predicate on the "linked_entity_type" field.
func LinkedEntityTypeIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldLinkedEntityType, vs...))
}

// LinkedEntityTypeNotIn applies the NotIn predicate on the "linked_entity_type" field.
func LinkedEntityTypeNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldLinkedEntityType, vs...))
}

// LinkedEntityTypeGT applies the GT predicate on the "linked_entity_type" field.
func LinkedEntityTypeGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldLinkedEntityType, v))
}

// LinkedEntityTypeGTE applies the GTE predicate on the "linked_entity_type" field.
func LinkedEntityTypeGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldLinkedEntityType, v))
}

// LinkedEntityTypeLT applies the LT predicate on the "linked_entity_type" field.
func LinkedEntityTypeLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldLinkedEntityType, v))
}

// LinkedEntityTypeLTE applies the LTE predicate on the "linked_entity_type" field.
func LinkedEntityTypeLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldLinkedEntityType, v))
}

// LinkedEntityTypeContains applies the Contains predicate on the "linked_entity_type" field.
func LinkedEntityTypeContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldLinkedEntityType, v))
}

// LinkedEntityTypeHasPrefix applies the HasPrefix predicate on the "linked_entity_type" field.
func LinkedEntityTypeHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldLinkedEntityType, v))
}

// LinkedEntityTypeHasSuffix applies the HasSuffix predicate on the "linked_entity_type" field.
func LinkedEntityTypeHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldLinkedEntityType, v))
}

// LinkedEntityTypeIsNil applies the IsNil predicate on the "linked_entity_type" field.
func LinkedEntityTypeIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldLinkedEntityType))
}

// LinkedEntityTypeNotNil applies the NotNil predicate on the "linked_entity_type" field.
func LinkedEntityTypeNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldLinkedEntityType))
}

// LinkedEntityTypeEqualFold applies the EqualFold predicate on the "linked_entity_type" field.
func LinkedEntityTypeEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldLinkedEntityType, v))
}

// LinkedEntityTypeContainsFold applies the ContainsFold predicate on the "linked_entity_type" field.
func LinkedEntityTypeContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldLinkedEntityType, v))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldRejectionReason, v))
}

// RejectedAtEQ applies the EQ predicate on the "rejected_at" field.
func RejectedAtEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldRejectedAt, v))
}

// RejectedAtNEQ applies the NEQ predicate on the "rejected_at" field.
func RejectedAtNEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldRejectedAt, v))
}

// RejectedAtIn applies the In predicate on the "rejected_at" field.
func RejectedAtIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldRejectedAt, vs...))
}

// RejectedAtNotIn applies the NotIn predicate on the "rejected_at" field.
func RejectedAtNotIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldRejectedAt, vs...))
}

// RejectedAtGT applies the GT predicate on the "rejected_at" field.
func RejectedAtGT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldRejectedAt, v))
}

// RejectedAtGTE applies the GTE predicate on the "rejected_at" field.
func RejectedAtGTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldRejectedAt, v))
}

// RejectedAtLT applies the LT predicate on the "rejected_at" field.
func RejectedAtLT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldRejectedAt, v))
}

// RejectedAtLTE applies the LTE predicate on the "rejected_at" field.
func RejectedAtLTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldRejectedAt, v))
}

// RejectedAtIsNil applies the IsNil predicate on the "rejected_at" field.
func RejectedAtIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldRejectedAt))
}

// RejectedAtNotNil applies the NotNil predicate on the "rejected_at" field.
func RejectedAtNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldRejectedAt))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.InboxItem {
	return predicate.InboxItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.IncomingFile) predicate.InboxItem {
	return predicate.InboxItem(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InboxItem) predicate.InboxItem {
	return predicate.InboxItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InboxItem) predicate.InboxItem {
	return predicate.InboxItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InboxItem) predicate.InboxItem {
	return predicate.InboxItem(sql.NotPredicates(p))
}
