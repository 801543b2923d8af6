// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docledger/docledger/db/ent/schema"
	"github.com/docledger/docledger/gen/ent/bill"
	"github.com/docledger/docledger/gen/ent/inboxitem"
	"github.com/docledger/docledger/gen/ent/incomingfile"
	"github.com/docledger/docledger/gen/ent/receipt"
	"github.com/docledger/docledger/gen/ent/serviceprovider"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billFields := schema.Bill{}.Fields()
	_ = billFields
	// billDescAmount is the schema descriptor for amount field.
	billDescAmount := billFields[4].Descriptor()
	// bill.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	bill.AmountValidator = billDescAmount.Validators[0].(func(float64) error)
	// billDescDescription is the schema descriptor for description field.
	billDescDescription := billFields[5].Descriptor()
	// bill.DefaultDescription holds the default value on creation for the description field.
	bill.DefaultDescription = billDescDescription.Default.(string)
	// billDescState is the schema descriptor for state field.
	billDescState := billFields[7].Descriptor()
	// bill.DefaultState holds the default value on creation for the state field.
	bill.DefaultState = billDescState.Default.(string)
	// bill.StateValidator is a validator for the "state" field. It is called by the builders before save.
	bill.StateValidator = billDescState.Validators[0].(func(string) error)
	// billDescCreatedDate is the schema descriptor for created_date field.
	billDescCreatedDate := billFields[8].Descriptor()
	// bill.DefaultCreatedDate holds the default value on creation for the created_date field.
	bill.DefaultCreatedDate = billDescCreatedDate.Default.(func() time.Time)
	// billDescID is the schema descriptor for id field.
	billDescID := billFields[0].Descriptor()
	// bill.DefaultID holds the default value on creation for the id field.
	bill.DefaultID = billDescID.Default.(func() uuid.UUID)
	inboxitemFields := schema.InboxItem{}.Fields()
	_ = inboxitemFields
	// inboxitemDescUploadedImage is the schema descriptor for uploaded_image field.
	inboxitemDescUploadedImage := inboxitemFields[3].Descriptor()
	// inboxitem.UploadedImageValidator is a validator for the "uploaded_image" field. It is called by the builders before save.
	inboxitem.UploadedImageValidator = inboxitemDescUploadedImage.Validators[0].(func(string) error)
	// inboxitemDescUploadDate is the schema descriptor for upload_date field.
	inboxitemDescUploadDate := inboxitemFields[4].Descriptor()
	// inboxitem.DefaultUploadDate holds the default value on creation for the upload_date field.
	inboxitem.DefaultUploadDate = inboxitemDescUploadDate.Default.(func() time.Time)
	// inboxitemDescState is the schema descriptor for state field.
	inboxitemDescState := inboxitemFields[5].Descriptor()
	// inboxitem.DefaultState holds the default value on creation for the state field.
	inboxitem.DefaultState = inboxitemDescState.Default.(string)
	// inboxitem.StateValidator is a validator for the "state" field. It is called by the builders before save.
	inboxitem.StateValidator = inboxitemDescState.Validators[0].(func(string) error)
	// inboxitemDescStatus is the schema descriptor for status field.
	inboxitemDescStatus := inboxitemFields[6].Descriptor()
	// inboxitem.DefaultStatus holds the default value on creation for the status field.
	inboxitem.DefaultStatus = inboxitemDescStatus.Default.(string)
	// inboxitemDescLinkedEntityType is the schema descriptor for linked_entity_type field.
	inboxitemDescLinkedEntityType := inboxitemFields[10].Descriptor()
	// inboxitem.LinkedEntityTypeValidator is a validator for the "linked_entity_type" field. It is called by the builders before save.
	inboxitem.LinkedEntityTypeValidator = inboxitemDescLinkedEntityType.Validators[0].(func(string) error)
	// inboxitemDescID is the schema descriptor for id field.
	inboxitemDescID := inboxitemFields[0].Descriptor()
	// inboxitem.DefaultID holds the default value on creation for the id field.
	inboxitem.DefaultID = inboxitemDescID.Default.(func() uuid.UUID)
	incomingfileFields := schema.IncomingFile{}.Fields()
	_ = incomingfileFields
	// incomingfileDescFilename is the schema descriptor for filename field.
	incomingfileDescFilename := incomingfileFields[2].Descriptor()
	// incomingfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	incomingfile.FilenameValidator = incomingfileDescFilename.Validators[0].(func(string) error)
	// incomingfileDescFilePath is the schema descriptor for file_path field.
	incomingfileDescFilePath := incomingfileFields[3].Descriptor()
	// incomingfile.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	incomingfile.FilePathValidator = incomingfileDescFilePath.Validators[0].(func(string) error)
	// incomingfileDescFileExt is the schema descriptor for file_ext field.
	incomingfileDescFileExt := incomingfileFields[4].Descriptor()
	// incomingfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	incomingfile.FileExtValidator = incomingfileDescFileExt.Validators[0].(func(string) error)
	// incomingfileDescFileSize is the schema descriptor for file_size field.
	incomingfileDescFileSize := incomingfileFields[5].Descriptor()
	// incomingfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	incomingfile.FileSizeValidator = incomingfileDescFileSize.Validators[0].(func(int) error)
	// incomingfileDescChecksum is the schema descriptor for checksum field.
	incomingfileDescChecksum := incomingfileFields[6].Descriptor()
	// incomingfile.ChecksumValidator is a validator for the "checksum" field. It is called by the builders before save.
	incomingfile.ChecksumValidator = incomingfileDescChecksum.Validators[0].(func(string) error)
	// incomingfileDescStatus is the schema descriptor for status field.
	incomingfileDescStatus := incomingfileFields[7].Descriptor()
	// incomingfile.DefaultStatus holds the default value on creation for the status field.
	incomingfile.DefaultStatus = incomingfileDescStatus.Default.(string)
	// incomingfileDescUploadDate is the schema descriptor for upload_date field.
	incomingfileDescUploadDate := incomingfileFields[8].Descriptor()
	// incomingfile.DefaultUploadDate holds the default value on creation for the upload_date field.
	incomingfile.DefaultUploadDate = incomingfileDescUploadDate.Default.(func() time.Time)
	// incomingfileDescID is the schema descriptor for id field.
	incomingfileDescID := incomingfileFields[0].Descriptor()
	// incomingfile.DefaultID holds the default value on creation for the id field.
	incomingfile.DefaultID = incomingfileDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescAmount is the schema descriptor for amount field.
	receiptDescAmount := receiptFields[5].Descriptor()
	// receipt.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	receipt.AmountValidator = receiptDescAmount.Validators[0].(func(float64) error)
	// receiptDescDescription is the schema descriptor for description field.
	receiptDescDescription := receiptFields[6].Descriptor()
	// receipt.DefaultDescription holds the default value on creation for the description field.
	receipt.DefaultDescription = receiptDescDescription.Default.(string)
	// receiptDescState is the schema descriptor for state field.
	receiptDescState := receiptFields[8].Descriptor()
	// receipt.DefaultState holds the default value on creation for the state field.
	receipt.DefaultState = receiptDescState.Default.(string)
	// receipt.StateValidator is a validator for the "state" field. It is called by the builders before save.
	receipt.StateValidator = receiptDescState.Validators[0].(func(string) error)
	// receiptDescCreatedDate is the schema descriptor for created_date field.
	receiptDescCreatedDate := receiptFields[9].Descriptor()
	// receipt.DefaultCreatedDate holds the default value on creation for the created_date field.
	receipt.DefaultCreatedDate = receiptDescCreatedDate.Default.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
	serviceproviderFields := schema.ServiceProvider{}.Fields()
	_ = serviceproviderFields
	// serviceproviderDescName is the schema descriptor for name field.
	serviceproviderDescName := serviceproviderFields[1].Descriptor()
	// serviceprovider.NameValidator is a validator for the "name" field. It is called by the builders before save.
	serviceprovider.NameValidator = serviceproviderDescName.Validators[0].(func(string) error)
	// serviceproviderDescComment is the schema descriptor for comment field.
	serviceproviderDescComment := serviceproviderFields[3].Descriptor()
	// serviceprovider.DefaultComment holds the default value on creation for the comment field.
	serviceprovider.DefaultComment = serviceproviderDescComment.Default.(string)
	// serviceproviderDescCommentForOcr is the schema descriptor for comment_for_ocr field.
	serviceproviderDescCommentForOcr := serviceproviderFields[4].Descriptor()
	// serviceprovider.DefaultCommentForOcr holds the default value on creation for the comment_for_ocr field.
	serviceprovider.DefaultCommentForOcr = serviceproviderDescCommentForOcr.Default.(string)
	// serviceproviderDescRegular is the schema descriptor for regular field.
	serviceproviderDescRegular := serviceproviderFields[5].Descriptor()
	// serviceprovider.DefaultRegular holds the default value on creation for the regular field.
	serviceprovider.DefaultRegular = serviceproviderDescRegular.Default.(string)
	// serviceprovider.RegularValidator is a validator for the "regular" field. It is called by the builders before save.
	serviceprovider.RegularValidator = serviceproviderDescRegular.Validators[0].(func(string) error)
	// serviceproviderDescState is the schema descriptor for state field.
	serviceproviderDescState := serviceproviderFields[7].Descriptor()
	// serviceprovider.DefaultState holds the default value on creation for the state field.
	serviceprovider.DefaultState = serviceproviderDescState.Default.(string)
	// serviceprovider.StateValidator is a validator for the "state" field. It is called by the builders before save.
	serviceprovider.StateValidator = serviceproviderDescState.Validators[0].(func(string) error)
	// serviceproviderDescCreatedDate is the schema descriptor for created_date field.
	serviceproviderDescCreatedDate := serviceproviderFields[8].Descriptor()
	// serviceprovider.DefaultCreatedDate holds the default value on creation for the created_date field.
	serviceprovider.DefaultCreatedDate = serviceproviderDescCreatedDate.Default.(func() time.Time)
	// serviceproviderDescModifiedDate is the schema descriptor for modified_date field.
	serviceproviderDescModifiedDate := serviceproviderFields[9].Descriptor()
	// serviceprovider.DefaultModifiedDate holds the default value on creation for the modified_date field.
	serviceprovider.DefaultModifiedDate = serviceproviderDescModifiedDate.Default.(func() time.Time)
	// serviceprovider.UpdateDefaultModifiedDate holds the default value on update for the modified_date field.
	serviceprovider.UpdateDefaultModifiedDate = serviceproviderDescModifiedDate.UpdateDefault.(func() time.Time)
	// serviceproviderDescID is the schema descriptor for id field.
	serviceproviderDescID := serviceproviderFields[0].Descriptor()
	// serviceprovider.DefaultID holds the default value on creation for the id field.
	serviceprovider.DefaultID = serviceproviderDescID.Default.(func() uuid.UUID)
}
