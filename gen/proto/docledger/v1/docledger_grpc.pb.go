// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: docledger/v1/docledger.proto

package docledgerv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InboxService_UploadFile_FullMethodName       = "/docledger.v1.InboxService/UploadFile"
	InboxService_IngestDirectory_FullMethodName  = "/docledger.v1.InboxService/IngestDirectory"
	InboxService_ListInbox_FullMethodName        = "/docledger.v1.InboxService/ListInbox"
	InboxService_ProcessOcrResult_FullMethodName = "/docledger.v1.InboxService/ProcessOcrResult"
	InboxService_RetryOcr_FullMethodName         = "/docledger.v1.InboxService/RetryOcr"
	InboxService_Reject_FullMethodName           = "/docledger.v1.InboxService/Reject"
)

// InboxServiceClient is the client API for InboxService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InboxService covers uploads and the review lifecycle of staged documents.
type InboxServiceClient interface {
	UploadFile(ctx context.Context, in *UploadFileRequest, opts ...grpc.CallOption) (*UploadFileResponse, error)
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
	ListInbox(ctx context.Context, in *ListInboxRequest, opts ...grpc.CallOption) (*ListInboxResponse, error)
	ProcessOcrResult(ctx context.Context, in *ProcessOcrResultRequest, opts ...grpc.CallOption) (*InboxItemResponse, error)
	RetryOcr(ctx context.Context, in *RetryOcrRequest, opts ...grpc.CallOption) (*InboxItemResponse, error)
	Reject(ctx context.Context, in *RejectRequest, opts ...grpc.CallOption) (*InboxItemResponse, error)
}

type inboxServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInboxServiceClient(cc grpc.ClientConnInterface) InboxServiceClient {
	return &inboxServiceClient{cc}
}

func (c *inboxServiceClient) UploadFile(ctx context.Context, in *UploadFileRequest, opts ...grpc.CallOption) (*UploadFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadFileResponse)
	err := c.cc.Invoke(ctx, InboxService_UploadFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inboxServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, InboxService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inboxServiceClient) ListInbox(ctx context.Context, in *ListInboxRequest, opts ...grpc.CallOption) (*ListInboxResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInboxResponse)
	err := c.cc.Invoke(ctx, InboxService_ListInbox_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inboxServiceClient) ProcessOcrResult(ctx context.Context, in *ProcessOcrResultRequest, opts ...grpc.CallOption) (*InboxItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InboxItemResponse)
	err := c.cc.Invoke(ctx, InboxService_ProcessOcrResult_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inboxServiceClient) RetryOcr(ctx context.Context, in *RetryOcrRequest, opts ...grpc.CallOption) (*InboxItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InboxItemResponse)
	err := c.cc.Invoke(ctx, InboxService_RetryOcr_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inboxServiceClient) Reject(ctx context.Context, in *RejectRequest, opts ...grpc.CallOption) (*InboxItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InboxItemResponse)
	err := c.cc.Invoke(ctx, InboxService_Reject_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InboxServiceServer is the server API for InboxService service.
// All implementations must embed UnimplementedInboxServiceServer
// for forward compatibility.
//
// InboxService covers uploads and the review lifecycle of staged documents.
type InboxServiceServer interface {
	UploadFile(context.Context, *UploadFileRequest) (*UploadFileResponse, error)
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	ListInbox(context.Context, *ListInboxRequest) (*ListInboxResponse, error)
	ProcessOcrResult(context.Context, *ProcessOcrResultRequest) (*InboxItemResponse, error)
	RetryOcr(context.Context, *RetryOcrRequest) (*InboxItemResponse, error)
	Reject(context.Context, *RejectRequest) (*InboxItemResponse, error)
	mustEmbedUnimplementedInboxServiceServer()
}

// UnimplementedInboxServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInboxServiceServer struct{}

func (UnimplementedInboxServiceServer) UploadFile(context.Context, *UploadFileRequest) (*UploadFileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadFile not implemented")
}
func (UnimplementedInboxServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedInboxServiceServer) ListInbox(context.Context, *ListInboxRequest) (*ListInboxResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListInbox not implemented")
}
func (UnimplementedInboxServiceServer) ProcessOcrResult(context.Context, *ProcessOcrResultRequest) (*InboxItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessOcrResult not implemented")
}
func (UnimplementedInboxServiceServer) RetryOcr(context.Context, *RetryOcrRequest) (*InboxItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RetryOcr not implemented")
}
func (UnimplementedInboxServiceServer) Reject(context.Context, *RejectRequest) (*InboxItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Reject not implemented")
}
func (UnimplementedInboxServiceServer) mustEmbedUnimplementedInboxServiceServer() {}
func (UnimplementedInboxServiceServer) testEmbeddedByValue()                      {}

// UnsafeInboxServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InboxServiceServer will
// result in compilation errors.
type UnsafeInboxServiceServer interface {
	mustEmbedUnimplementedInboxServiceServer()
}

func RegisterInboxServiceServer(s grpc.ServiceRegistrar, srv InboxServiceServer) {
	// If the following call panics, it indicates UnimplementedInboxServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InboxService_ServiceDesc, srv)
}

func _InboxService_UploadFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InboxServiceServer).UploadFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InboxService_UploadFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InboxServiceServer).UploadFile(ctx, req.(*UploadFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InboxService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InboxServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InboxService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InboxServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InboxService_ListInbox_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInboxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InboxServiceServer).ListInbox(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InboxService_ListInbox_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InboxServiceServer).ListInbox(ctx, req.(*ListInboxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InboxService_ProcessOcrResult_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessOcrResultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InboxServiceServer).ProcessOcrResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InboxService_ProcessOcrResult_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InboxServiceServer).ProcessOcrResult(ctx, req.(*ProcessOcrResultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InboxService_RetryOcr_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetryOcrRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InboxServiceServer).RetryOcr(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InboxService_RetryOcr_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InboxServiceServer).RetryOcr(ctx, req.(*RetryOcrRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InboxService_Reject_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InboxServiceServer).Reject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InboxService_Reject_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InboxServiceServer).Reject(ctx, req.(*RejectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InboxService_ServiceDesc is the grpc.ServiceDesc for InboxService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InboxService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docledger.v1.InboxService",
	HandlerType: (*InboxServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadFile",
			Handler:    _InboxService_UploadFile_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _InboxService_IngestDirectory_Handler,
		},
		{
			MethodName: "ListInbox",
			Handler:    _InboxService_ListInbox_Handler,
		},
		{
			MethodName: "ProcessOcrResult",
			Handler:    _InboxService_ProcessOcrResult_Handler,
		},
		{
			MethodName: "RetryOcr",
			Handler:    _InboxService_RetryOcr_Handler,
		},
		{
			MethodName: "Reject",
			Handler:    _InboxService_Reject_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docledger/v1/docledger.proto",
}

const (
	LedgerService_ApproveAsBill_FullMethodName    = "/docledger.v1.LedgerService/ApproveAsBill"
	LedgerService_ApproveAsReceipt_FullMethodName = "/docledger.v1.LedgerService/ApproveAsReceipt"
	LedgerService_RemoveBill_FullMethodName       = "/docledger.v1.LedgerService/RemoveBill"
	LedgerService_RemoveReceipt_FullMethodName    = "/docledger.v1.LedgerService/RemoveReceipt"
	LedgerService_ListBills_FullMethodName        = "/docledger.v1.LedgerService/ListBills"
	LedgerService_ListReceipts_FullMethodName     = "/docledger.v1.LedgerService/ListReceipts"
	LedgerService_ExportLedger_FullMethodName     = "/docledger.v1.LedgerService/ExportLedger"
)

// LedgerServiceClient is the client API for LedgerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// LedgerService converts reviewed inbox items into bills and receipts and
// queries the resulting ledger.
type LedgerServiceClient interface {
	ApproveAsBill(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveAsBillResponse, error)
	ApproveAsReceipt(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveAsReceiptResponse, error)
	RemoveBill(ctx context.Context, in *RemoveLedgerEntityRequest, opts ...grpc.CallOption) (*RemoveBillResponse, error)
	RemoveReceipt(ctx context.Context, in *RemoveLedgerEntityRequest, opts ...grpc.CallOption) (*RemoveReceiptResponse, error)
	ListBills(ctx context.Context, in *ListLedgerRequest, opts ...grpc.CallOption) (*ListBillsResponse, error)
	ListReceipts(ctx context.Context, in *ListLedgerRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error)
	ExportLedger(ctx context.Context, in *ListLedgerRequest, opts ...grpc.CallOption) (*ExportLedgerResponse, error)
}

type ledgerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLedgerServiceClient(cc grpc.ClientConnInterface) LedgerServiceClient {
	return &ledgerServiceClient{cc}
}

func (c *ledgerServiceClient) ApproveAsBill(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveAsBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveAsBillResponse)
	err := c.cc.Invoke(ctx, LedgerService_ApproveAsBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) ApproveAsReceipt(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveAsReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveAsReceiptResponse)
	err := c.cc.Invoke(ctx, LedgerService_ApproveAsReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) RemoveBill(ctx context.Context, in *RemoveLedgerEntityRequest, opts ...grpc.CallOption) (*RemoveBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveBillResponse)
	err := c.cc.Invoke(ctx, LedgerService_RemoveBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) RemoveReceipt(ctx context.Context, in *RemoveLedgerEntityRequest, opts ...grpc.CallOption) (*RemoveReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveReceiptResponse)
	err := c.cc.Invoke(ctx, LedgerService_RemoveReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) ListBills(ctx context.Context, in *ListLedgerRequest, opts ...grpc.CallOption) (*ListBillsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBillsResponse)
	err := c.cc.Invoke(ctx, LedgerService_ListBills_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) ListReceipts(ctx context.Context, in *ListLedgerRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReceiptsResponse)
	err := c.cc.Invoke(ctx, LedgerService_ListReceipts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) ExportLedger(ctx context.Context, in *ListLedgerRequest, opts ...grpc.CallOption) (*ExportLedgerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportLedgerResponse)
	err := c.cc.Invoke(ctx, LedgerService_ExportLedger_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LedgerServiceServer is the server API for LedgerService service.
// All implementations must embed UnimplementedLedgerServiceServer
// for forward compatibility.
//
// LedgerService converts reviewed inbox items into bills and receipts and
// queries the resulting ledger.
type LedgerServiceServer interface {
	ApproveAsBill(context.Context, *ApproveRequest) (*ApproveAsBillResponse, error)
	ApproveAsReceipt(context.Context, *ApproveRequest) (*ApproveAsReceiptResponse, error)
	RemoveBill(context.Context, *RemoveLedgerEntityRequest) (*RemoveBillResponse, error)
	RemoveReceipt(context.Context, *RemoveLedgerEntityRequest) (*RemoveReceiptResponse, error)
	ListBills(context.Context, *ListLedgerRequest) (*ListBillsResponse, error)
	ListReceipts(context.Context, *ListLedgerRequest) (*ListReceiptsResponse, error)
	ExportLedger(context.Context, *ListLedgerRequest) (*ExportLedgerResponse, error)
	mustEmbedUnimplementedLedgerServiceServer()
}

// UnimplementedLedgerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLedgerServiceServer struct{}

func (UnimplementedLedgerServiceServer) ApproveAsBill(context.Context, *ApproveRequest) (*ApproveAsBillResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApproveAsBill not implemented")
}
func (UnimplementedLedgerServiceServer) ApproveAsReceipt(context.Context, *ApproveRequest) (*ApproveAsReceiptResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApproveAsReceipt not implemented")
}
func (UnimplementedLedgerServiceServer) RemoveBill(context.Context, *RemoveLedgerEntityRequest) (*RemoveBillResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveBill not implemented")
}
func (UnimplementedLedgerServiceServer) RemoveReceipt(context.Context, *RemoveLedgerEntityRequest) (*RemoveReceiptResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveReceipt not implemented")
}
func (UnimplementedLedgerServiceServer) ListBills(context.Context, *ListLedgerRequest) (*ListBillsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBills not implemented")
}
func (UnimplementedLedgerServiceServer) ListReceipts(context.Context, *ListLedgerRequest) (*ListReceiptsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListReceipts not implemented")
}
func (UnimplementedLedgerServiceServer) ExportLedger(context.Context, *ListLedgerRequest) (*ExportLedgerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportLedger not implemented")
}
func (UnimplementedLedgerServiceServer) mustEmbedUnimplementedLedgerServiceServer() {}
func (UnimplementedLedgerServiceServer) testEmbeddedByValue()                       {}

// UnsafeLedgerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LedgerServiceServer will
// result in compilation errors.
type UnsafeLedgerServiceServer interface {
	mustEmbedUnimplementedLedgerServiceServer()
}

func RegisterLedgerServiceServer(s grpc.ServiceRegistrar, srv LedgerServiceServer) {
	// If the following call panics, it indicates UnimplementedLedgerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LedgerService_ServiceDesc, srv)
}

func _LedgerService_ApproveAsBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ApproveAsBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LedgerService_ApproveAsBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ApproveAsBill(ctx, req.(*ApproveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_ApproveAsReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ApproveAsReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LedgerService_ApproveAsReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ApproveAsReceipt(ctx, req.(*ApproveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_RemoveBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveLedgerEntityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).RemoveBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LedgerService_RemoveBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).RemoveBill(ctx, req.(*RemoveLedgerEntityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_RemoveReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveLedgerEntityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).RemoveReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LedgerService_RemoveReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).RemoveReceipt(ctx, req.(*RemoveLedgerEntityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_ListBills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ListBills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LedgerService_ListBills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ListBills(ctx, req.(*ListLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_ListReceipts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ListReceipts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LedgerService_ListReceipts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ListReceipts(ctx, req.(*ListLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_ExportLedger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ExportLedger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LedgerService_ExportLedger_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ExportLedger(ctx, req.(*ListLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LedgerService_ServiceDesc is the grpc.ServiceDesc for LedgerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docledger.v1.LedgerService",
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ApproveAsBill",
			Handler:    _LedgerService_ApproveAsBill_Handler,
		},
		{
			MethodName: "ApproveAsReceipt",
			Handler:    _LedgerService_ApproveAsReceipt_Handler,
		},
		{
			MethodName: "RemoveBill",
			Handler:    _LedgerService_RemoveBill_Handler,
		},
		{
			MethodName: "RemoveReceipt",
			Handler:    _LedgerService_RemoveReceipt_Handler,
		},
		{
			MethodName: "ListBills",
			Handler:    _LedgerService_ListBills_Handler,
		},
		{
			MethodName: "ListReceipts",
			Handler:    _LedgerService_ListReceipts_Handler,
		},
		{
			MethodName: "ExportLedger",
			Handler:    _LedgerService_ExportLedger_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docledger/v1/docledger.proto",
}

const (
	ProviderService_CreateProvider_FullMethodName  = "/docledger.v1.ProviderService/CreateProvider"
	ProviderService_ListProviders_FullMethodName   = "/docledger.v1.ProviderService/ListProviders"
	ProviderService_RenameProvider_FullMethodName  = "/docledger.v1.ProviderService/RenameProvider"
	ProviderService_HideProvider_FullMethodName    = "/docledger.v1.ProviderService/HideProvider"
	ProviderService_ShowProvider_FullMethodName    = "/docledger.v1.ProviderService/ShowProvider"
	ProviderService_SetCustomFields_FullMethodName = "/docledger.v1.ProviderService/SetCustomFields"
)

// ProviderServiceClient is the client API for ProviderService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProviderService manages the service provider catalog.
type ProviderServiceClient interface {
	CreateProvider(ctx context.Context, in *CreateProviderRequest, opts ...grpc.CallOption) (*ProviderResponse, error)
	ListProviders(ctx context.Context, in *ListProvidersRequest, opts ...grpc.CallOption) (*ListProvidersResponse, error)
	RenameProvider(ctx context.Context, in *RenameProviderRequest, opts ...grpc.CallOption) (*ProviderResponse, error)
	HideProvider(ctx context.Context, in *ProviderIdRequest, opts ...grpc.CallOption) (*ProviderResponse, error)
	ShowProvider(ctx context.Context, in *ProviderIdRequest, opts ...grpc.CallOption) (*ProviderResponse, error)
	SetCustomFields(ctx context.Context, in *SetCustomFieldsRequest, opts ...grpc.CallOption) (*ProviderResponse, error)
}

type providerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProviderServiceClient(cc grpc.ClientConnInterface) ProviderServiceClient {
	return &providerServiceClient{cc}
}

func (c *providerServiceClient) CreateProvider(ctx context.Context, in *CreateProviderRequest, opts ...grpc.CallOption) (*ProviderResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProviderResponse)
	err := c.cc.Invoke(ctx, ProviderService_CreateProvider_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) ListProviders(ctx context.Context, in *ListProvidersRequest, opts ...grpc.CallOption) (*ListProvidersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProvidersResponse)
	err := c.cc.Invoke(ctx, ProviderService_ListProviders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) RenameProvider(ctx context.Context, in *RenameProviderRequest, opts ...grpc.CallOption) (*ProviderResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProviderResponse)
	err := c.cc.Invoke(ctx, ProviderService_RenameProvider_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) HideProvider(ctx context.Context, in *ProviderIdRequest, opts ...grpc.CallOption) (*ProviderResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProviderResponse)
	err := c.cc.Invoke(ctx, ProviderService_HideProvider_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) ShowProvider(ctx context.Context, in *ProviderIdRequest, opts ...grpc.CallOption) (*ProviderResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProviderResponse)
	err := c.cc.Invoke(ctx, ProviderService_ShowProvider_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) SetCustomFields(ctx context.Context, in *SetCustomFieldsRequest, opts ...grpc.CallOption) (*ProviderResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProviderResponse)
	err := c.cc.Invoke(ctx, ProviderService_SetCustomFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProviderServiceServer is the server API for ProviderService service.
// All implementations must embed UnimplementedProviderServiceServer
// for forward compatibility.
//
// ProviderService manages the service provider catalog.
type ProviderServiceServer interface {
	CreateProvider(context.Context, *CreateProviderRequest) (*ProviderResponse, error)
	ListProviders(context.Context, *ListProvidersRequest) (*ListProvidersResponse, error)
	RenameProvider(context.Context, *RenameProviderRequest) (*ProviderResponse, error)
	HideProvider(context.Context, *ProviderIdRequest) (*ProviderResponse, error)
	ShowProvider(context.Context, *ProviderIdRequest) (*ProviderResponse, error)
	SetCustomFields(context.Context, *SetCustomFieldsRequest) (*ProviderResponse, error)
	mustEmbedUnimplementedProviderServiceServer()
}

// UnimplementedProviderServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProviderServiceServer struct{}

func (UnimplementedProviderServiceServer) CreateProvider(context.Context, *CreateProviderRequest) (*ProviderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProvider not implemented")
}
func (UnimplementedProviderServiceServer) ListProviders(context.Context, *ListProvidersRequest) (*ListProvidersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProviders not implemented")
}
func (UnimplementedProviderServiceServer) RenameProvider(context.Context, *RenameProviderRequest) (*ProviderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RenameProvider not implemented")
}
func (UnimplementedProviderServiceServer) HideProvider(context.Context, *ProviderIdRequest) (*ProviderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HideProvider not implemented")
}
func (UnimplementedProviderServiceServer) ShowProvider(context.Context, *ProviderIdRequest) (*ProviderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ShowProvider not implemented")
}
func (UnimplementedProviderServiceServer) SetCustomFields(context.Context, *SetCustomFieldsRequest) (*ProviderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetCustomFields not implemented")
}
func (UnimplementedProviderServiceServer) mustEmbedUnimplementedProviderServiceServer() {}
func (UnimplementedProviderServiceServer) testEmbeddedByValue()                         {}

// UnsafeProviderServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProviderServiceServer will
// result in compilation errors.
type UnsafeProviderServiceServer interface {
	mustEmbedUnimplementedProviderServiceServer()
}

func RegisterProviderServiceServer(s grpc.ServiceRegistrar, srv ProviderServiceServer) {
	// If the following call panics, it indicates UnimplementedProviderServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProviderService_ServiceDesc, srv)
}

func _ProviderService_CreateProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProviderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).CreateProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_CreateProvider_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).CreateProvider(ctx, req.(*CreateProviderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_ListProviders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProvidersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).ListProviders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_ListProviders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).ListProviders(ctx, req.(*ListProvidersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_RenameProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenameProviderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).RenameProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_RenameProvider_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).RenameProvider(ctx, req.(*RenameProviderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_HideProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProviderIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).HideProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_HideProvider_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).HideProvider(ctx, req.(*ProviderIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_ShowProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProviderIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).ShowProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_ShowProvider_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).ShowProvider(ctx, req.(*ProviderIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_SetCustomFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetCustomFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).SetCustomFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_SetCustomFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).SetCustomFields(ctx, req.(*SetCustomFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProviderService_ServiceDesc is the grpc.ServiceDesc for ProviderService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProviderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docledger.v1.ProviderService",
	HandlerType: (*ProviderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProvider",
			Handler:    _ProviderService_CreateProvider_Handler,
		},
		{
			MethodName: "ListProviders",
			Handler:    _ProviderService_ListProviders_Handler,
		},
		{
			MethodName: "RenameProvider",
			Handler:    _ProviderService_RenameProvider_Handler,
		},
		{
			MethodName: "HideProvider",
			Handler:    _ProviderService_HideProvider_Handler,
		},
		{
			MethodName: "ShowProvider",
			Handler:    _ProviderService_ShowProvider_Handler,
		},
		{
			MethodName: "SetCustomFields",
			Handler:    _ProviderService_SetCustomFields_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docledger/v1/docledger.proto",
}
