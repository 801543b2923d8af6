// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: docledger/v1/docledger.proto

package docledgerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type InboxItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	UserId        string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	UploadedImage string                 `protobuf:"bytes,4,opt,name=uploaded_image,json=uploadedImage,proto3" json:"uploaded_image,omitempty"`
	UploadDate    string                 `protobuf:"bytes,5,opt,name=upload_date,json=uploadDate,proto3" json:"upload_date,omitempty"`
	State         string                 `protobuf:"bytes,6,opt,name=state,proto3" json:"state,omitempty"`
	// Canonical status (NEW/APPROVED/REJECTED); empty when the stored raw
	// value is outside the known set.
	Status           string `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	RawStatus        string `protobuf:"bytes,8,opt,name=raw_status,json=rawStatus,proto3" json:"raw_status,omitempty"`
	OcrResults       string `protobuf:"bytes,9,opt,name=ocr_results,json=ocrResults,proto3" json:"ocr_results,omitempty"`
	FailureReason    string `protobuf:"bytes,10,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	LinkedEntityId   string `protobuf:"bytes,11,opt,name=linked_entity_id,json=linkedEntityId,proto3" json:"linked_entity_id,omitempty"`
	LinkedEntityType string `protobuf:"bytes,12,opt,name=linked_entity_type,json=linkedEntityType,proto3" json:"linked_entity_type,omitempty"`
	RejectionReason  string `protobuf:"bytes,13,opt,name=rejection_reason,json=rejectionReason,proto3" json:"rejection_reason,omitempty"`
	RejectedAt       string `protobuf:"bytes,14,opt,name=rejected_at,json=rejectedAt,proto3" json:"rejected_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *InboxItem) Reset() {
	*x = InboxItem{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InboxItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InboxItem) ProtoMessage() {}

func (x *InboxItem) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InboxItem.ProtoReflect.Descriptor instead.
func (*InboxItem) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{0}
}

func (x *InboxItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InboxItem) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *InboxItem) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *InboxItem) GetUploadedImage() string {
	if x != nil {
		return x.UploadedImage
	}
	return ""
}

func (x *InboxItem) GetUploadDate() string {
	if x != nil {
		return x.UploadDate
	}
	return ""
}

func (x *InboxItem) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *InboxItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *InboxItem) GetRawStatus() string {
	if x != nil {
		return x.RawStatus
	}
	return ""
}

func (x *InboxItem) GetOcrResults() string {
	if x != nil {
		return x.OcrResults
	}
	return ""
}

func (x *InboxItem) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

func (x *InboxItem) GetLinkedEntityId() string {
	if x != nil {
		return x.LinkedEntityId
	}
	return ""
}

func (x *InboxItem) GetLinkedEntityType() string {
	if x != nil {
		return x.LinkedEntityType
	}
	return ""
}

func (x *InboxItem) GetRejectionReason() string {
	if x != nil {
		return x.RejectionReason
	}
	return ""
}

func (x *InboxItem) GetRejectedAt() string {
	if x != nil {
		return x.RejectedAt
	}
	return ""
}

type IncomingFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	FilePath      string                 `protobuf:"bytes,4,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	FileExt       string                 `protobuf:"bytes,5,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	FileSize      int64                  `protobuf:"varint,6,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	Checksum      string                 `protobuf:"bytes,7,opt,name=checksum,proto3" json:"checksum,omitempty"`
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	UploadDate    string                 `protobuf:"bytes,9,opt,name=upload_date,json=uploadDate,proto3" json:"upload_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IncomingFile) Reset() {
	*x = IncomingFile{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IncomingFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IncomingFile) ProtoMessage() {}

func (x *IncomingFile) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IncomingFile.ProtoReflect.Descriptor instead.
func (*IncomingFile) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{1}
}

func (x *IncomingFile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *IncomingFile) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *IncomingFile) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *IncomingFile) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *IncomingFile) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IncomingFile) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *IncomingFile) GetChecksum() string {
	if x != nil {
		return x.Checksum
	}
	return ""
}

func (x *IncomingFile) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *IncomingFile) GetUploadDate() string {
	if x != nil {
		return x.UploadDate
	}
	return ""
}

type Bill struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId            string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ServiceProviderId string                 `protobuf:"bytes,3,opt,name=service_provider_id,json=serviceProviderId,proto3" json:"service_provider_id,omitempty"`
	Date              string                 `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"`
	Amount            string                 `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Description       string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	State             string                 `protobuf:"bytes,7,opt,name=state,proto3" json:"state,omitempty"`
	CreatedDate       string                 `protobuf:"bytes,8,opt,name=created_date,json=createdDate,proto3" json:"created_date,omitempty"`
	InboxItemId       string                 `protobuf:"bytes,9,opt,name=inbox_item_id,json=inboxItemId,proto3" json:"inbox_item_id,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Bill) Reset() {
	*x = Bill{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Bill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bill) ProtoMessage() {}

func (x *Bill) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Bill.ProtoReflect.Descriptor instead.
func (*Bill) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{2}
}

func (x *Bill) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Bill) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Bill) GetServiceProviderId() string {
	if x != nil {
		return x.ServiceProviderId
	}
	return ""
}

func (x *Bill) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *Bill) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Bill) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Bill) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Bill) GetCreatedDate() string {
	if x != nil {
		return x.CreatedDate
	}
	return ""
}

func (x *Bill) GetInboxItemId() string {
	if x != nil {
		return x.InboxItemId
	}
	return ""
}

type Receipt struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId            string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ServiceProviderId string                 `protobuf:"bytes,3,opt,name=service_provider_id,json=serviceProviderId,proto3" json:"service_provider_id,omitempty"`
	Date              string                 `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"`
	Amount            string                 `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Description       string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	State             string                 `protobuf:"bytes,7,opt,name=state,proto3" json:"state,omitempty"`
	CreatedDate       string                 `protobuf:"bytes,8,opt,name=created_date,json=createdDate,proto3" json:"created_date,omitempty"`
	InboxItemId       string                 `protobuf:"bytes,9,opt,name=inbox_item_id,json=inboxItemId,proto3" json:"inbox_item_id,omitempty"`
	PaymentTypeId     string                 `protobuf:"bytes,10,opt,name=payment_type_id,json=paymentTypeId,proto3" json:"payment_type_id,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{3}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Receipt) GetServiceProviderId() string {
	if x != nil {
		return x.ServiceProviderId
	}
	return ""
}

func (x *Receipt) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *Receipt) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Receipt) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Receipt) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Receipt) GetCreatedDate() string {
	if x != nil {
		return x.CreatedDate
	}
	return ""
}

func (x *Receipt) GetInboxItemId() string {
	if x != nil {
		return x.InboxItemId
	}
	return ""
}

func (x *Receipt) GetPaymentTypeId() string {
	if x != nil {
		return x.PaymentTypeId
	}
	return ""
}

type ServiceProvider struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Comment       string                 `protobuf:"bytes,3,opt,name=comment,proto3" json:"comment,omitempty"`
	CommentForOcr string                 `protobuf:"bytes,4,opt,name=comment_for_ocr,json=commentForOcr,proto3" json:"comment_for_ocr,omitempty"`
	Regular       string                 `protobuf:"bytes,5,opt,name=regular,proto3" json:"regular,omitempty"`
	State         string                 `protobuf:"bytes,6,opt,name=state,proto3" json:"state,omitempty"`
	CreatedDate   string                 `protobuf:"bytes,7,opt,name=created_date,json=createdDate,proto3" json:"created_date,omitempty"`
	ModifiedDate  string                 `protobuf:"bytes,8,opt,name=modified_date,json=modifiedDate,proto3" json:"modified_date,omitempty"`
	Avatar        string                 `protobuf:"bytes,9,opt,name=avatar,proto3" json:"avatar,omitempty"`
	CustomFields  string                 `protobuf:"bytes,10,opt,name=custom_fields,json=customFields,proto3" json:"custom_fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServiceProvider) Reset() {
	*x = ServiceProvider{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServiceProvider) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServiceProvider) ProtoMessage() {}

func (x *ServiceProvider) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServiceProvider.ProtoReflect.Descriptor instead.
func (*ServiceProvider) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{4}
}

func (x *ServiceProvider) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ServiceProvider) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ServiceProvider) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

func (x *ServiceProvider) GetCommentForOcr() string {
	if x != nil {
		return x.CommentForOcr
	}
	return ""
}

func (x *ServiceProvider) GetRegular() string {
	if x != nil {
		return x.Regular
	}
	return ""
}

func (x *ServiceProvider) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *ServiceProvider) GetCreatedDate() string {
	if x != nil {
		return x.CreatedDate
	}
	return ""
}

func (x *ServiceProvider) GetModifiedDate() string {
	if x != nil {
		return x.ModifiedDate
	}
	return ""
}

func (x *ServiceProvider) GetAvatar() string {
	if x != nil {
		return x.Avatar
	}
	return ""
}

func (x *ServiceProvider) GetCustomFields() string {
	if x != nil {
		return x.CustomFields
	}
	return ""
}

type UploadFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadFileRequest) Reset() {
	*x = UploadFileRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFileRequest) ProtoMessage() {}

func (x *UploadFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFileRequest.ProtoReflect.Descriptor instead.
func (*UploadFileRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{5}
}

func (x *UploadFileRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadFileRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadFileRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	File          *IncomingFile          `protobuf:"bytes,1,opt,name=file,proto3" json:"file,omitempty"`
	Item          *InboxItem             `protobuf:"bytes,2,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadFileResponse) Reset() {
	*x = UploadFileResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFileResponse) ProtoMessage() {}

func (x *UploadFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFileResponse.ProtoReflect.Descriptor instead.
func (*UploadFileResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{6}
}

func (x *UploadFileResponse) GetFile() *IncomingFile {
	if x != nil {
		return x.File
	}
	return nil
}

func (x *UploadFileResponse) GetItem() *InboxItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type IngestDirectoryRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	UserId   string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	RootPath string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	// Defaults to true when unset.
	SkipHidden    *bool `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3,oneof" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{7}
}

func (x *IngestDirectoryRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil && x.SkipHidden != nil {
		return *x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResult        `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{8}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type IngestResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SourcePath    string                 `protobuf:"bytes,1,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	InboxItemId   string                 `protobuf:"bytes,3,opt,name=inbox_item_id,json=inboxItemId,proto3" json:"inbox_item_id,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ChecksumHex   string                 `protobuf:"bytes,5,opt,name=checksum_hex,json=checksumHex,proto3" json:"checksum_hex,omitempty"`
	FileExt       string                 `protobuf:"bytes,6,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,7,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	Error         string                 `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestResult) Reset() {
	*x = IngestResult{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResult) ProtoMessage() {}

func (x *IngestResult) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResult.ProtoReflect.Descriptor instead.
func (*IngestResult) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{9}
}

func (x *IngestResult) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResult) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResult) GetInboxItemId() string {
	if x != nil {
		return x.InboxItemId
	}
	return ""
}

func (x *IngestResult) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResult) GetChecksumHex() string {
	if x != nil {
		return x.ChecksumHex
	}
	return ""
}

func (x *IngestResult) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResult) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResult) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ListInboxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInboxRequest) Reset() {
	*x = ListInboxRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInboxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInboxRequest) ProtoMessage() {}

func (x *ListInboxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInboxRequest.ProtoReflect.Descriptor instead.
func (*ListInboxRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{10}
}

func (x *ListInboxRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListInboxRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListInboxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*InboxItem           `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInboxResponse) Reset() {
	*x = ListInboxResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInboxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInboxResponse) ProtoMessage() {}

func (x *ListInboxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInboxResponse.ProtoReflect.Descriptor instead.
func (*ListInboxResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{11}
}

func (x *ListInboxResponse) GetItems() []*InboxItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ProcessOcrResultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	OcrResults    string                 `protobuf:"bytes,2,opt,name=ocr_results,json=ocrResults,proto3" json:"ocr_results,omitempty"`
	FailureReason string                 `protobuf:"bytes,3,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessOcrResultRequest) Reset() {
	*x = ProcessOcrResultRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessOcrResultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessOcrResultRequest) ProtoMessage() {}

func (x *ProcessOcrResultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessOcrResultRequest.ProtoReflect.Descriptor instead.
func (*ProcessOcrResultRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{12}
}

func (x *ProcessOcrResultRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *ProcessOcrResultRequest) GetOcrResults() string {
	if x != nil {
		return x.OcrResults
	}
	return ""
}

func (x *ProcessOcrResultRequest) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

type RetryOcrRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryOcrRequest) Reset() {
	*x = RetryOcrRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryOcrRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryOcrRequest) ProtoMessage() {}

func (x *RetryOcrRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryOcrRequest.ProtoReflect.Descriptor instead.
func (*RetryOcrRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{13}
}

func (x *RetryOcrRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

type RejectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectRequest) Reset() {
	*x = RejectRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectRequest) ProtoMessage() {}

func (x *RejectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectRequest.ProtoReflect.Descriptor instead.
func (*RejectRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{14}
}

func (x *RejectRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *RejectRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type InboxItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *InboxItem             `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InboxItemResponse) Reset() {
	*x = InboxItemResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InboxItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InboxItemResponse) ProtoMessage() {}

func (x *InboxItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InboxItemResponse.ProtoReflect.Descriptor instead.
func (*InboxItemResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{15}
}

func (x *InboxItemResponse) GetItem() *InboxItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type ApproveRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ItemId            string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	ServiceProviderId string                 `protobuf:"bytes,2,opt,name=service_provider_id,json=serviceProviderId,proto3" json:"service_provider_id,omitempty"`
	Amount            float64                `protobuf:"fixed64,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Date              string                 `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"`
	Description       string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ApproveRequest) Reset() {
	*x = ApproveRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveRequest) ProtoMessage() {}

func (x *ApproveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveRequest.ProtoReflect.Descriptor instead.
func (*ApproveRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{16}
}

func (x *ApproveRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *ApproveRequest) GetServiceProviderId() string {
	if x != nil {
		return x.ServiceProviderId
	}
	return ""
}

func (x *ApproveRequest) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *ApproveRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *ApproveRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type ApproveAsBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *InboxItem             `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	Bill          *Bill                  `protobuf:"bytes,2,opt,name=bill,proto3" json:"bill,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveAsBillResponse) Reset() {
	*x = ApproveAsBillResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveAsBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveAsBillResponse) ProtoMessage() {}

func (x *ApproveAsBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveAsBillResponse.ProtoReflect.Descriptor instead.
func (*ApproveAsBillResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{17}
}

func (x *ApproveAsBillResponse) GetItem() *InboxItem {
	if x != nil {
		return x.Item
	}
	return nil
}

func (x *ApproveAsBillResponse) GetBill() *Bill {
	if x != nil {
		return x.Bill
	}
	return nil
}

type ApproveAsReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *InboxItem             `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	Receipt       *Receipt               `protobuf:"bytes,2,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveAsReceiptResponse) Reset() {
	*x = ApproveAsReceiptResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveAsReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveAsReceiptResponse) ProtoMessage() {}

func (x *ApproveAsReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveAsReceiptResponse.ProtoReflect.Descriptor instead.
func (*ApproveAsReceiptResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{18}
}

func (x *ApproveAsReceiptResponse) GetItem() *InboxItem {
	if x != nil {
		return x.Item
	}
	return nil
}

func (x *ApproveAsReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type RemoveLedgerEntityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveLedgerEntityRequest) Reset() {
	*x = RemoveLedgerEntityRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveLedgerEntityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveLedgerEntityRequest) ProtoMessage() {}

func (x *RemoveLedgerEntityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveLedgerEntityRequest.ProtoReflect.Descriptor instead.
func (*RemoveLedgerEntityRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{19}
}

func (x *RemoveLedgerEntityRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RemoveBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bill          *Bill                  `protobuf:"bytes,1,opt,name=bill,proto3" json:"bill,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveBillResponse) Reset() {
	*x = RemoveBillResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveBillResponse) ProtoMessage() {}

func (x *RemoveBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveBillResponse.ProtoReflect.Descriptor instead.
func (*RemoveBillResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{20}
}

func (x *RemoveBillResponse) GetBill() *Bill {
	if x != nil {
		return x.Bill
	}
	return nil
}

type RemoveReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveReceiptResponse) Reset() {
	*x = RemoveReceiptResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveReceiptResponse) ProtoMessage() {}

func (x *RemoveReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveReceiptResponse.ProtoReflect.Descriptor instead.
func (*RemoveReceiptResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{21}
}

func (x *RemoveReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ListLedgerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLedgerRequest) Reset() {
	*x = ListLedgerRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLedgerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLedgerRequest) ProtoMessage() {}

func (x *ListLedgerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLedgerRequest.ProtoReflect.Descriptor instead.
func (*ListLedgerRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{22}
}

func (x *ListLedgerRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListLedgerRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListLedgerRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bills         []*Bill                `protobuf:"bytes,1,rep,name=bills,proto3" json:"bills,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillsResponse) Reset() {
	*x = ListBillsResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillsResponse) ProtoMessage() {}

func (x *ListBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillsResponse.ProtoReflect.Descriptor instead.
func (*ListBillsResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{23}
}

func (x *ListBillsResponse) GetBills() []*Bill {
	if x != nil {
		return x.Bills
	}
	return nil
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{24}
}

func (x *ListReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type ExportLedgerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLedgerResponse) Reset() {
	*x = ExportLedgerResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLedgerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLedgerResponse) ProtoMessage() {}

func (x *ExportLedgerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLedgerResponse.ProtoReflect.Descriptor instead.
func (*ExportLedgerResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{25}
}

func (x *ExportLedgerResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportLedgerResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type CreateProviderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProviderRequest) Reset() {
	*x = CreateProviderRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProviderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProviderRequest) ProtoMessage() {}

func (x *CreateProviderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProviderRequest.ProtoReflect.Descriptor instead.
func (*CreateProviderRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{26}
}

func (x *CreateProviderRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ListProvidersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IncludeHidden bool                   `protobuf:"varint,1,opt,name=include_hidden,json=includeHidden,proto3" json:"include_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProvidersRequest) Reset() {
	*x = ListProvidersRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProvidersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProvidersRequest) ProtoMessage() {}

func (x *ListProvidersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProvidersRequest.ProtoReflect.Descriptor instead.
func (*ListProvidersRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{27}
}

func (x *ListProvidersRequest) GetIncludeHidden() bool {
	if x != nil {
		return x.IncludeHidden
	}
	return false
}

type ListProvidersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Providers     []*ServiceProvider     `protobuf:"bytes,1,rep,name=providers,proto3" json:"providers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProvidersResponse) Reset() {
	*x = ListProvidersResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProvidersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProvidersResponse) ProtoMessage() {}

func (x *ListProvidersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProvidersResponse.ProtoReflect.Descriptor instead.
func (*ListProvidersResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{28}
}

func (x *ListProvidersResponse) GetProviders() []*ServiceProvider {
	if x != nil {
		return x.Providers
	}
	return nil
}

type RenameProviderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenameProviderRequest) Reset() {
	*x = RenameProviderRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenameProviderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenameProviderRequest) ProtoMessage() {}

func (x *RenameProviderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenameProviderRequest.ProtoReflect.Descriptor instead.
func (*RenameProviderRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{29}
}

func (x *RenameProviderRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RenameProviderRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ProviderIdRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProviderIdRequest) Reset() {
	*x = ProviderIdRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProviderIdRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProviderIdRequest) ProtoMessage() {}

func (x *ProviderIdRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProviderIdRequest.ProtoReflect.Descriptor instead.
func (*ProviderIdRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{30}
}

func (x *ProviderIdRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ProviderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Provider      *ServiceProvider       `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProviderResponse) Reset() {
	*x = ProviderResponse{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProviderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProviderResponse) ProtoMessage() {}

func (x *ProviderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProviderResponse.ProtoReflect.Descriptor instead.
func (*ProviderResponse) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{31}
}

func (x *ProviderResponse) GetProvider() *ServiceProvider {
	if x != nil {
		return x.Provider
	}
	return nil
}

type SetCustomFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CustomFields  string                 `protobuf:"bytes,2,opt,name=custom_fields,json=customFields,proto3" json:"custom_fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCustomFieldsRequest) Reset() {
	*x = SetCustomFieldsRequest{}
	mi := &file_docledger_v1_docledger_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCustomFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCustomFieldsRequest) ProtoMessage() {}

func (x *SetCustomFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docledger_v1_docledger_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCustomFieldsRequest.ProtoReflect.Descriptor instead.
func (*SetCustomFieldsRequest) Descriptor() ([]byte, []int) {
	return file_docledger_v1_docledger_proto_rawDescGZIP(), []int{32}
}

func (x *SetCustomFieldsRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SetCustomFieldsRequest) GetCustomFields() string {
	if x != nil {
		return x.CustomFields
	}
	return ""
}

var File_docledger_v1_docledger_proto protoreflect.FileDescriptor

const file_docledger_v1_docledger_proto_rawDesc = "" +
	"\n" +
	"\x1cdocledger/v1/docledger.proto\x12\fdocledger.v1\"\xce\x03\n" +
	"\tInboxItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12%\n" +
	"\x0euploaded_image\x18\x04 \x01(\tR\ruploadedImage\x12\x1f\n" +
	"\vupload_date\x18\x05 \x01(\tR\n" +
	"uploadDate\x12\x14\n" +
	"\x05state\x18\x06 \x01(\tR\x05state\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"raw_status\x18\b \x01(\tR\trawStatus\x12\x1f\n" +
	"\vocr_results\x18\t \x01(\tR\n" +
	"ocrResults\x12%\n" +
	"\x0efailure_reason\x18\n" +
	" \x01(\tR\rfailureReason\x12(\n" +
	"\x10linked_entity_id\x18\v \x01(\tR\x0elinkedEntityId\x12,\n" +
	"\x12linked_entity_type\x18\f \x01(\tR\x10linkedEntityType\x12)\n" +
	"\x10rejection_reason\x18\r \x01(\tR\x0frejectionReason\x12\x1f\n" +
	"\vrejected_at\x18\x0e \x01(\tR\n" +
	"rejectedAt\"\xfd\x01\n" +
	"\fIncomingFile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x1b\n" +
	"\tfile_path\x18\x04 \x01(\tR\bfilePath\x12\x19\n" +
	"\bfile_ext\x18\x05 \x01(\tR\afileExt\x12\x1b\n" +
	"\tfile_size\x18\x06 \x01(\x03R\bfileSize\x12\x1a\n" +
	"\bchecksum\x18\a \x01(\tR\bchecksum\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12\x1f\n" +
	"\vupload_date\x18\t \x01(\tR\n" +
	"uploadDate\"\x8a\x02\n" +
	"\x04Bill\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12.\n" +
	"\x13service_provider_id\x18\x03 \x01(\tR\x11serviceProviderId\x12\x12\n" +
	"\x04date\x18\x04 \x01(\tR\x04date\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\tR\x06amount\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12\x14\n" +
	"\x05state\x18\a \x01(\tR\x05state\x12!\n" +
	"\fcreated_date\x18\b \x01(\tR\vcreatedDate\x12\"\n" +
	"\rinbox_item_id\x18\t \x01(\tR\vinboxItemId\"\xb5\x02\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12.\n" +
	"\x13service_provider_id\x18\x03 \x01(\tR\x11serviceProviderId\x12\x12\n" +
	"\x04date\x18\x04 \x01(\tR\x04date\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\tR\x06amount\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12\x14\n" +
	"\x05state\x18\a \x01(\tR\x05state\x12!\n" +
	"\fcreated_date\x18\b \x01(\tR\vcreatedDate\x12\"\n" +
	"\rinbox_item_id\x18\t \x01(\tR\vinboxItemId\x12&\n" +
	"\x0fpayment_type_id\x18\n" +
	" \x01(\tR\rpaymentTypeId\"\xac\x02\n" +
	"\x0fServiceProvider\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acomment\x18\x03 \x01(\tR\acomment\x12&\n" +
	"\x0fcomment_for_ocr\x18\x04 \x01(\tR\rcommentForOcr\x12\x18\n" +
	"\aregular\x18\x05 \x01(\tR\aregular\x12\x14\n" +
	"\x05state\x18\x06 \x01(\tR\x05state\x12!\n" +
	"\fcreated_date\x18\a \x01(\tR\vcreatedDate\x12#\n" +
	"\rmodified_date\x18\b \x01(\tR\fmodifiedDate\x12\x16\n" +
	"\x06avatar\x18\t \x01(\tR\x06avatar\x12#\n" +
	"\rcustom_fields\x18\n" +
	" \x01(\tR\fcustomFields\"b\n" +
	"\x11UploadFileRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"q\n" +
	"\x12UploadFileResponse\x12.\n" +
	"\x04file\x18\x01 \x01(\v2\x1a.docledger.v1.IncomingFileR\x04file\x12+\n" +
	"\x04item\x18\x02 \x01(\v2\x17.docledger.v1.InboxItemR\x04item\"\x84\x01\n" +
	"\x16IngestDirectoryRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12$\n" +
	"\vskip_hidden\x18\x03 \x01(\bH\x00R\n" +
	"skipHidden\x88\x01\x01B\x0e\n" +
	"\f_skip_hidden\"\xdd\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x124\n" +
	"\aresults\x18\x06 \x03(\v2\x1a.docledger.v1.IngestResultR\aresults\"\x85\x02\n" +
	"\fIngestResult\x12\x1f\n" +
	"\vsource_path\x18\x01 \x01(\tR\n" +
	"sourcePath\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\"\n" +
	"\rinbox_item_id\x18\x03 \x01(\tR\vinboxItemId\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\bR\fdeduplicated\x12!\n" +
	"\fchecksum_hex\x18\x05 \x01(\tR\vchecksumHex\x12\x19\n" +
	"\bfile_ext\x18\x06 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\a \x01(\tR\n" +
	"uploadedAt\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\"C\n" +
	"\x10ListInboxRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"B\n" +
	"\x11ListInboxResponse\x12-\n" +
	"\x05items\x18\x01 \x03(\v2\x17.docledger.v1.InboxItemR\x05items\"z\n" +
	"\x17ProcessOcrResultRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x1f\n" +
	"\vocr_results\x18\x02 \x01(\tR\n" +
	"ocrResults\x12%\n" +
	"\x0efailure_reason\x18\x03 \x01(\tR\rfailureReason\"*\n" +
	"\x0fRetryOcrRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\"@\n" +
	"\rRejectRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"@\n" +
	"\x11InboxItemResponse\x12+\n" +
	"\x04item\x18\x01 \x01(\v2\x17.docledger.v1.InboxItemR\x04item\"\xa7\x01\n" +
	"\x0eApproveRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12.\n" +
	"\x13service_provider_id\x18\x02 \x01(\tR\x11serviceProviderId\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x01R\x06amount\x12\x12\n" +
	"\x04date\x18\x04 \x01(\tR\x04date\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\"l\n" +
	"\x15ApproveAsBillResponse\x12+\n" +
	"\x04item\x18\x01 \x01(\v2\x17.docledger.v1.InboxItemR\x04item\x12&\n" +
	"\x04bill\x18\x02 \x01(\v2\x12.docledger.v1.BillR\x04bill\"x\n" +
	"\x18ApproveAsReceiptResponse\x12+\n" +
	"\x04item\x18\x01 \x01(\v2\x17.docledger.v1.InboxItemR\x04item\x12/\n" +
	"\areceipt\x18\x02 \x01(\v2\x15.docledger.v1.ReceiptR\areceipt\"+\n" +
	"\x19RemoveLedgerEntityRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"<\n" +
	"\x12RemoveBillResponse\x12&\n" +
	"\x04bill\x18\x01 \x01(\v2\x12.docledger.v1.BillR\x04bill\"H\n" +
	"\x15RemoveReceiptResponse\x12/\n" +
	"\areceipt\x18\x01 \x01(\v2\x15.docledger.v1.ReceiptR\areceipt\"b\n" +
	"\x11ListLedgerRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"=\n" +
	"\x11ListBillsResponse\x12(\n" +
	"\x05bills\x18\x01 \x03(\v2\x12.docledger.v1.BillR\x05bills\"I\n" +
	"\x14ListReceiptsResponse\x121\n" +
	"\breceipts\x18\x01 \x03(\v2\x15.docledger.v1.ReceiptR\breceipts\"L\n" +
	"\x14ExportLedgerResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"+\n" +
	"\x15CreateProviderRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"=\n" +
	"\x14ListProvidersRequest\x12%\n" +
	"\x0einclude_hidden\x18\x01 \x01(\bR\rincludeHidden\"T\n" +
	"\x15ListProvidersResponse\x12;\n" +
	"\tproviders\x18\x01 \x03(\v2\x1d.docledger.v1.ServiceProviderR\tproviders\";\n" +
	"\x15RenameProviderRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"#\n" +
	"\x11ProviderIdRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"M\n" +
	"\x10ProviderResponse\x129\n" +
	"\bprovider\x18\x01 \x01(\v2\x1d.docledger.v1.ServiceProviderR\bprovider\"M\n" +
	"\x16SetCustomFieldsRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rcustom_fields\x18\x02 \x01(\tR\fcustomFields2\xfd\x03\n" +
	"\fInboxService\x12O\n" +
	"\n" +
	"UploadFile\x12\x1f.docledger.v1.UploadFileRequest\x1a .docledger.v1.UploadFileResponse\x12^\n" +
	"\x0fIngestDirectory\x12$.docledger.v1.IngestDirectoryRequest\x1a%.docledger.v1.IngestDirectoryResponse\x12L\n" +
	"\tListInbox\x12\x1e.docledger.v1.ListInboxRequest\x1a\x1f.docledger.v1.ListInboxResponse\x12Z\n" +
	"\x10ProcessOcrResult\x12%.docledger.v1.ProcessOcrResultRequest\x1a\x1f.docledger.v1.InboxItemResponse\x12J\n" +
	"\bRetryOcr\x12\x1d.docledger.v1.RetryOcrRequest\x1a\x1f.docledger.v1.InboxItemResponse\x12F\n" +
	"\x06Reject\x12\x1b.docledger.v1.RejectRequest\x1a\x1f.docledger.v1.InboxItemResponse2\xee\x04\n" +
	"\rLedgerService\x12R\n" +
	"\rApproveAsBill\x12\x1c.docledger.v1.ApproveRequest\x1a#.docledger.v1.ApproveAsBillResponse\x12X\n" +
	"\x10ApproveAsReceipt\x12\x1c.docledger.v1.ApproveRequest\x1a&.docledger.v1.ApproveAsReceiptResponse\x12W\n" +
	"\n" +
	"RemoveBill\x12'.docledger.v1.RemoveLedgerEntityRequest\x1a .docledger.v1.RemoveBillResponse\x12]\n" +
	"\rRemoveReceipt\x12'.docledger.v1.RemoveLedgerEntityRequest\x1a#.docledger.v1.RemoveReceiptResponse\x12M\n" +
	"\tListBills\x12\x1f.docledger.v1.ListLedgerRequest\x1a\x1f.docledger.v1.ListBillsResponse\x12S\n" +
	"\fListReceipts\x12\x1f.docledger.v1.ListLedgerRequest\x1a\".docledger.v1.ListReceiptsResponse\x12S\n" +
	"\fExportLedger\x12\x1f.docledger.v1.ListLedgerRequest\x1a\".docledger.v1.ExportLedgerResponse2\x94\x04\n" +
	"\x0fProviderService\x12U\n" +
	"\x0eCreateProvider\x12#.docledger.v1.CreateProviderRequest\x1a\x1e.docledger.v1.ProviderResponse\x12X\n" +
	"\rListProviders\x12\".docledger.v1.ListProvidersRequest\x1a#.docledger.v1.ListProvidersResponse\x12U\n" +
	"\x0eRenameProvider\x12#.docledger.v1.RenameProviderRequest\x1a\x1e.docledger.v1.ProviderResponse\x12O\n" +
	"\fHideProvider\x12\x1f.docledger.v1.ProviderIdRequest\x1a\x1e.docledger.v1.ProviderResponse\x12O\n" +
	"\fShowProvider\x12\x1f.docledger.v1.ProviderIdRequest\x1a\x1e.docledger.v1.ProviderResponse\x12W\n" +
	"\x0fSetCustomFields\x12$.docledger.v1.SetCustomFieldsRequest\x1a\x1e.docledger.v1.ProviderResponseBCZAgithub.com/docledger/docledger/gen/proto/docledger/v1;docledgerv1b\x06proto3"

var (
	file_docledger_v1_docledger_proto_rawDescOnce sync.Once
	file_docledger_v1_docledger_proto_rawDescData []byte
)

func file_docledger_v1_docledger_proto_rawDescGZIP() []byte {
	file_docledger_v1_docledger_proto_rawDescOnce.Do(func() {
		file_docledger_v1_docledger_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docledger_v1_docledger_proto_rawDesc), len(file_docledger_v1_docledger_proto_rawDesc)))
	})
	return file_docledger_v1_docledger_proto_rawDescData
}

var file_docledger_v1_docledger_proto_msgTypes = make([]protoimpl.MessageInfo, 33)
var file_docledger_v1_docledger_proto_goTypes = []any{
	(*InboxItem)(nil),                 // 0: docledger.v1.InboxItem
	(*IncomingFile)(nil),              // 1: docledger.v1.IncomingFile
	(*Bill)(nil),                      // 2: docledger.v1.Bill
	(*Receipt)(nil),                   // 3: docledger.v1.Receipt
	(*ServiceProvider)(nil),           // 4: docledger.v1.ServiceProvider
	(*UploadFileRequest)(nil),         // 5: docledger.v1.UploadFileRequest
	(*UploadFileResponse)(nil),        // 6: docledger.v1.UploadFileResponse
	(*IngestDirectoryRequest)(nil),    // 7: docledger.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),   // 8: docledger.v1.IngestDirectoryResponse
	(*IngestResult)(nil),              // 9: docledger.v1.IngestResult
	(*ListInboxRequest)(nil),          // 10: docledger.v1.ListInboxRequest
	(*ListInboxResponse)(nil),         // 11: docledger.v1.ListInboxResponse
	(*ProcessOcrResultRequest)(nil),   // 12: docledger.v1.ProcessOcrResultRequest
	(*RetryOcrRequest)(nil),           // 13: docledger.v1.RetryOcrRequest
	(*RejectRequest)(nil),             // 14: docledger.v1.RejectRequest
	(*InboxItemResponse)(nil),         // 15: docledger.v1.InboxItemResponse
	(*ApproveRequest)(nil),            // 16: docledger.v1.ApproveRequest
	(*ApproveAsBillResponse)(nil),     // 17: docledger.v1.ApproveAsBillResponse
	(*ApproveAsReceiptResponse)(nil),  // 18: docledger.v1.ApproveAsReceiptResponse
	(*RemoveLedgerEntityRequest)(nil), // 19: docledger.v1.RemoveLedgerEntityRequest
	(*RemoveBillResponse)(nil),        // 20: docledger.v1.RemoveBillResponse
	(*RemoveReceiptResponse)(nil),     // 21: docledger.v1.RemoveReceiptResponse
	(*ListLedgerRequest)(nil),         // 22: docledger.v1.ListLedgerRequest
	(*ListBillsResponse)(nil),         // 23: docledger.v1.ListBillsResponse
	(*ListReceiptsResponse)(nil),      // 24: docledger.v1.ListReceiptsResponse
	(*ExportLedgerResponse)(nil),      // 25: docledger.v1.ExportLedgerResponse
	(*CreateProviderRequest)(nil),     // 26: docledger.v1.CreateProviderRequest
	(*ListProvidersRequest)(nil),      // 27: docledger.v1.ListProvidersRequest
	(*ListProvidersResponse)(nil),     // 28: docledger.v1.ListProvidersResponse
	(*RenameProviderRequest)(nil),     // 29: docledger.v1.RenameProviderRequest
	(*ProviderIdRequest)(nil),         // 30: docledger.v1.ProviderIdRequest
	(*ProviderResponse)(nil),          // 31: docledger.v1.ProviderResponse
	(*SetCustomFieldsRequest)(nil),    // 32: docledger.v1.SetCustomFieldsRequest
}
var file_docledger_v1_docledger_proto_depIdxs = []int32{
	1,  // 0: docledger.v1.UploadFileResponse.file:type_name -> docledger.v1.IncomingFile
	0,  // 1: docledger.v1.UploadFileResponse.item:type_name -> docledger.v1.InboxItem
	9,  // 2: docledger.v1.IngestDirectoryResponse.results:type_name -> docledger.v1.IngestResult
	0,  // 3: docledger.v1.ListInboxResponse.items:type_name -> docledger.v1.InboxItem
	0,  // 4: docledger.v1.InboxItemResponse.item:type_name -> docledger.v1.InboxItem
	0,  // 5: docledger.v1.ApproveAsBillResponse.item:type_name -> docledger.v1.InboxItem
	2,  // 6: docledger.v1.ApproveAsBillResponse.bill:type_name -> docledger.v1.Bill
	0,  // 7: docledger.v1.ApproveAsReceiptResponse.item:type_name -> docledger.v1.InboxItem
	3,  // 8: docledger.v1.ApproveAsReceiptResponse.receipt:type_name -> docledger.v1.Receipt
	2,  // 9: docledger.v1.RemoveBillResponse.bill:type_name -> docledger.v1.Bill
	3,  // 10: docledger.v1.RemoveReceiptResponse.receipt:type_name -> docledger.v1.Receipt
	2,  // 11: docledger.v1.ListBillsResponse.bills:type_name -> docledger.v1.Bill
	3,  // 12: docledger.v1.ListReceiptsResponse.receipts:type_name -> docledger.v1.Receipt
	4,  // 13: docledger.v1.ListProvidersResponse.providers:type_name -> docledger.v1.ServiceProvider
	4,  // 14: docledger.v1.ProviderResponse.provider:type_name -> docledger.v1.ServiceProvider
	5,  // 15: docledger.v1.InboxService.UploadFile:input_type -> docledger.v1.UploadFileRequest
	7,  // 16: docledger.v1.InboxService.IngestDirectory:input_type -> docledger.v1.IngestDirectoryRequest
	10, // 17: docledger.v1.InboxService.ListInbox:input_type -> docledger.v1.ListInboxRequest
	12, // 18: docledger.v1.InboxService.ProcessOcrResult:input_type -> docledger.v1.ProcessOcrResultRequest
	13, // 19: docledger.v1.InboxService.RetryOcr:input_type -> docledger.v1.RetryOcrRequest
	14, // 20: docledger.v1.InboxService.Reject:input_type -> docledger.v1.RejectRequest
	16, // 21: docledger.v1.LedgerService.ApproveAsBill:input_type -> docledger.v1.ApproveRequest
	16, // 22: docledger.v1.LedgerService.ApproveAsReceipt:input_type -> docledger.v1.ApproveRequest
	19, // 23: docledger.v1.LedgerService.RemoveBill:input_type -> docledger.v1.RemoveLedgerEntityRequest
	19, // 24: docledger.v1.LedgerService.RemoveReceipt:input_type -> docledger.v1.RemoveLedgerEntityRequest
	22, // 25: docledger.v1.LedgerService.ListBills:input_type -> docledger.v1.ListLedgerRequest
	22, // 26: docledger.v1.LedgerService.ListReceipts:input_type -> docledger.v1.ListLedgerRequest
	22, // 27: docledger.v1.LedgerService.ExportLedger:input_type -> docledger.v1.ListLedgerRequest
	26, // 28: docledger.v1.ProviderService.CreateProvider:input_type -> docledger.v1.CreateProviderRequest
	27, // 29: docledger.v1.ProviderService.ListProviders:input_type -> docledger.v1.ListProvidersRequest
	29, // 30: docledger.v1.ProviderService.RenameProvider:input_type -> docledger.v1.RenameProviderRequest
	30, // 31: docledger.v1.ProviderService.HideProvider:input_type -> docledger.v1.ProviderIdRequest
	30, // 32: docledger.v1.ProviderService.ShowProvider:input_type -> docledger.v1.ProviderIdRequest
	32, // 33: docledger.v1.ProviderService.SetCustomFields:input_type -> docledger.v1.SetCustomFieldsRequest
	6,  // 34: docledger.v1.InboxService.UploadFile:output_type -> docledger.v1.UploadFileResponse
	8,  // 35: docledger.v1.InboxService.IngestDirectory:output_type -> docledger.v1.IngestDirectoryResponse
	11, // 36: docledger.v1.InboxService.ListInbox:output_type -> docledger.v1.ListInboxResponse
	15, // 37: docledger.v1.InboxService.ProcessOcrResult:output_type -> docledger.v1.InboxItemResponse
	15, // 38: docledger.v1.InboxService.RetryOcr:output_type -> docledger.v1.InboxItemResponse
	15, // 39: docledger.v1.InboxService.Reject:output_type -> docledger.v1.InboxItemResponse
	17, // 40: docledger.v1.LedgerService.ApproveAsBill:output_type -> docledger.v1.ApproveAsBillResponse
	18, // 41: docledger.v1.LedgerService.ApproveAsReceipt:output_type -> docledger.v1.ApproveAsReceiptResponse
	20, // 42: docledger.v1.LedgerService.RemoveBill:output_type -> docledger.v1.RemoveBillResponse
	21, // 43: docledger.v1.LedgerService.RemoveReceipt:output_type -> docledger.v1.RemoveReceiptResponse
	23, // 44: docledger.v1.LedgerService.ListBills:output_type -> docledger.v1.ListBillsResponse
	24, // 45: docledger.v1.LedgerService.ListReceipts:output_type -> docledger.v1.ListReceiptsResponse
	25, // 46: docledger.v1.LedgerService.ExportLedger:output_type -> docledger.v1.ExportLedgerResponse
	31, // 47: docledger.v1.ProviderService.CreateProvider:output_type -> docledger.v1.ProviderResponse
	28, // 48: docledger.v1.ProviderService.ListProviders:output_type -> docledger.v1.ListProvidersResponse
	31, // 49: docledger.v1.ProviderService.RenameProvider:output_type -> docledger.v1.ProviderResponse
	31, // 50: docledger.v1.ProviderService.HideProvider:output_type -> docledger.v1.ProviderResponse
	31, // 51: docledger.v1.ProviderService.ShowProvider:output_type -> docledger.v1.ProviderResponse
	31, // 52: docledger.v1.ProviderService.SetCustomFields:output_type -> docledger.v1.ProviderResponse
	34, // [34:53] is the sub-list for method output_type
	15, // [15:34] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_docledger_v1_docledger_proto_init() }
func file_docledger_v1_docledger_proto_init() {
	if File_docledger_v1_docledger_proto != nil {
		return
	}
	file_docledger_v1_docledger_proto_msgTypes[7].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docledger_v1_docledger_proto_rawDesc), len(file_docledger_v1_docledger_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   33,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_docledger_v1_docledger_proto_goTypes,
		DependencyIndexes: file_docledger_v1_docledger_proto_depIdxs,
		MessageInfos:      file_docledger_v1_docledger_proto_msgTypes,
	}.Build()
	File_docledger_v1_docledger_proto = out.File
	file_docledger_v1_docledger_proto_goTypes = nil
	file_docledger_v1_docledger_proto_depIdxs = nil
}
