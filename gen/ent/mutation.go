// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docledger/docledger/gen/ent/bill"
	"github.com/docledger/docledger/gen/ent/inboxitem"
	"github.com/docledger/docledger/gen/ent/incomingfile"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/docledger/docledger/gen/ent/receipt"
	"github.com/docledger/docledger/gen/ent/serviceprovider"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBill            = "Bill"
	TypeInboxItem       = "InboxItem"
	TypeIncomingFile    = "IncomingFile"
	TypeReceipt         = "Receipt"
	TypeServiceProvider = "ServiceProvider"
)

// BillMutation represents an operation that mutates the Bill nodes in the graph.
type BillMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	user_id                 *uuid.UUID
	date                    *time.Time
	amount                  *float64
	addamount               *float64
	description             *string
	inbox_item_id           *uuid.UUID
	state                   *string
	created_date            *time.Time
	clearedFields           map[string]struct{}
	service_provider        *uuid.UUID
	clearedservice_provider bool
	done                    bool
	oldValue                func(context.Context) (*Bill, error)
	predicates              []predicate.Bill
}

var _ ent.Mutation = (*BillMutation)(nil)

// billOption allows management of the mutation configuration using functional options.
type billOption func(*BillMutation)

// newBillMutation creates new mutation for the Bill entity.
func newBillMutation(c config, op Op, opts ...billOption) *BillMutation {
	m := &BillMutation{
		config:        c,
		op:            op,
		typ:           TypeBill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillID sets the ID field of the mutation.
func withBillID(id uuid.UUID) billOption {
	return func(m *BillMutation) {
		var (
			err   error
			once  sync.Once
			value *Bill
		)
		m.oldValue = func(ctx context.Context) (*Bill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBill sets the old Bill of the mutation.
func withBill(node *Bill) billOption {
	return func(m *BillMutation) {
		m.oldValue = func(context.Context) (*Bill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bill entities.
func (m *BillMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BillMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BillMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BillMutation) ResetUserID() {
	m.user_id = nil
}

// SetServiceProviderID sets the "service_provider_id" field.
func (m *BillMutation) SetServiceProviderID(u uuid.UUID) {
	m.service_provider = &u
}

// ServiceProviderID returns the value of the "service_provider_id" field in the mutation.
func (m *BillMutation) ServiceProviderID() (r uuid.UUID, exists bool) {
	v := m.service_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceProviderID returns the old "service_provider_id" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldServiceProviderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceProviderID: %w", err)
	}
	return oldValue.ServiceProviderID, nil
}

// ResetServiceProviderID resets all changes to the "service_provider_id" field.
func (m *BillMutation) ResetServiceProviderID() {
	m.service_provider = nil
}

// SetDate sets the "date" field.
func (m *BillMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *BillMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *BillMutation) ResetDate() {
	m.date = nil
}

// SetAmount sets the "amount" field.
func (m *BillMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *BillMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *BillMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *BillMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *BillMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetDescription sets the "description" field.
func (m *BillMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BillMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *BillMutation) ResetDescription() {
	m.description = nil
}

// SetInboxItemID sets the "inbox_item_id" field.
func (m *BillMutation) SetInboxItemID(u uuid.UUID) {
	m.inbox_item_id = &u
}

// InboxItemID returns the value of the "inbox_item_id" field in the mutation.
func (m *BillMutation) InboxItemID() (r uuid.UUID, exists bool) {
	v := m.inbox_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInboxItemID returns the old "inbox_item_id" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldInboxItemID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboxItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboxItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboxItemID: %w", err)
	}
	return oldValue.InboxItemID, nil
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (m *BillMutation) ClearInboxItemID() {
	m.inbox_item_id = nil
	m.clearedFields[bill.FieldInboxItemID] = struct{}{}
}

// InboxItemIDCleared returns if the "inbox_item_id" field was cleared in this mutation.
func (m *BillMutation) InboxItemIDCleared() bool {
	_, ok := m.clearedFields[bill.FieldInboxItemID]
	return ok
}

// ResetInboxItemID resets all changes to the "inbox_item_id" field.
func (m *BillMutation) ResetInboxItemID() {
	m.inbox_item_id = nil
	delete(m.clearedFields, bill.FieldInboxItemID)
}

// SetState sets the "state" field.
func (m *BillMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *BillMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *BillMutation) ResetState() {
	m.state = nil
}

// SetCreatedDate sets the "created_date" field.
func (m *BillMutation) SetCreatedDate(t time.Time) {
	m.created_date = &t
}

// CreatedDate returns the value of the "created_date" field in the mutation.
func (m *BillMutation) CreatedDate() (r time.Time, exists bool) {
	v := m.created_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedDate returns the old "created_date" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldCreatedDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedDate: %w", err)
	}
	return oldValue.CreatedDate, nil
}

// ResetCreatedDate resets all changes to the "created_date" field.
func (m *BillMutation) ResetCreatedDate() {
	m.created_date = nil
}

// ClearServiceProvider clears the "service_provider" edge to the ServiceProvider entity.
func (m *BillMutation) ClearServiceProvider() {
	m.clearedservice_provider = true
	m.clearedFields[bill.FieldServiceProviderID] = struct{}{}
}

// ServiceProviderCleared reports if the "service_provider" edge to the ServiceProvider entity was cleared.
func (m *BillMutation) ServiceProviderCleared() bool {
	return m.clearedservice_provider
}

// ServiceProviderIDs returns the "service_provider" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServiceProviderID instead. It exists only for internal usage by the builders.
func (m *BillMutation) ServiceProviderIDs() (ids []uuid.UUID) {
	if id := m.service_provider; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServiceProvider resets all changes to the "service_provider" edge.
func (m *BillMutation) ResetServiceProvider() {
	m.service_provider = nil
	m.clearedservice_provider = false
}

// Where appends a list predicates to the BillMutation builder.
func (m *BillMutation) Where(ps ...predicate.Bill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bill).
func (m *BillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, bill.FieldUserID)
	}
	if m.service_provider != nil {
		fields = append(fields, bill.FieldServiceProviderID)
	}
	if m.date != nil {
		fields = append(fields, bill.FieldDate)
	}
	if m.amount != nil {
		fields = append(fields, bill.FieldAmount)
	}
	if m.description != nil {
		fields = append(fields, bill.FieldDescription)
	}
	if m.inbox_item_id != nil {
		fields = append(fields, bill.FieldInboxItemID)
	}
	if m.state != nil {
		fields = append(fields, bill.FieldState)
	}
	if m.created_date != nil {
		fields = append(fields, bill.FieldCreatedDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bill.FieldUserID:
		return m.UserID()
	case bill.FieldServiceProviderID:
		return m.ServiceProviderID()
	case bill.FieldDate:
		return m.Date()
	case bill.FieldAmount:
		return m.Amount()
	case bill.FieldDescription:
		return m.Description()
	case bill.FieldInboxItemID:
		return m.InboxItemID()
	case bill.FieldState:
		return m.State()
	case bill.FieldCreatedDate:
		return m.CreatedDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bill.FieldUserID:
		return m.OldUserID(ctx)
	case bill.FieldServiceProviderID:
		return m.OldServiceProviderID(ctx)
	case bill.FieldDate:
		return m.OldDate(ctx)
	case bill.FieldAmount:
		return m.OldAmount(ctx)
	case bill.FieldDescription:
		return m.OldDescription(ctx)
	case bill.FieldInboxItemID:
		return m.OldInboxItemID(ctx)
	case bill.FieldState:
		return m.OldState(ctx)
	case bill.FieldCreatedDate:
		return m.OldCreatedDate(ctx)
	}
	return nil, fmt.Errorf("unknown Bill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bill.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case bill.FieldServiceProviderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceProviderID(v)
		return nil
	case bill.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case bill.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case bill.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case bill.FieldInboxItemID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboxItemID(v)
		return nil
	case bill.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case bill.FieldCreatedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedDate(v)
		return nil
	}
	return fmt.Errorf("unknown Bill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, bill.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bill.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bill.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Bill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bill.FieldInboxItemID) {
		fields = append(fields, bill.FieldInboxItemID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillMutation) ClearField(name string) error {
	switch name {
	case bill.FieldInboxItemID:
		m.ClearInboxItemID()
		return nil
	}
	return fmt.Errorf("unknown Bill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillMutation) ResetField(name string) error {
	switch name {
	case bill.FieldUserID:
		m.ResetUserID()
		return nil
	case bill.FieldServiceProviderID:
		m.ResetServiceProviderID()
		return nil
	case bill.FieldDate:
		m.ResetDate()
		return nil
	case bill.FieldAmount:
		m.ResetAmount()
		return nil
	case bill.FieldDescription:
		m.ResetDescription()
		return nil
	case bill.FieldInboxItemID:
		m.ResetInboxItemID()
		return nil
	case bill.FieldState:
		m.ResetState()
		return nil
	case bill.FieldCreatedDate:
		m.ResetCreatedDate()
		return nil
	}
	return fmt.Errorf("unknown Bill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.service_provider != nil {
		edges = append(edges, bill.EdgeServiceProvider)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bill.EdgeServiceProvider:
		if id := m.service_provider; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedservice_provider {
		edges = append(edges, bill.EdgeServiceProvider)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillMutation) EdgeCleared(name string) bool {
	switch name {
	case bill.EdgeServiceProvider:
		return m.clearedservice_provider
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillMutation) ClearEdge(name string) error {
	switch name {
	case bill.EdgeServiceProvider:
		m.ClearServiceProvider()
		return nil
	}
	return fmt.Errorf("unknown Bill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillMutation) ResetEdge(name string) error {
	switch name {
	case bill.EdgeServiceProvider:
		m.ResetServiceProvider()
		return nil
	}
	return fmt.Errorf("unknown Bill edge %s", name)
}

// InboxItemMutation represents an operation that mutates the InboxItem nodes in the graph.
type InboxItemMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	user_id            *uuid.UUID
	uploaded_image     *string
	upload_date        *time.Time
	state              *string
	status             *string
	ocr_results        *string
	failure_reason     *string
	linked_entity_id   *uuid.UUID
	linked_entity_type *string
	rejection_reason   *string
	rejected_at        *time.Time
	clearedFields      map[string]struct{}
	file               *uuid.UUID
	clearedfile        bool
	done               bool
	oldValue           func(context.Context) (*InboxItem, error)
	predicates         []predicate.InboxItem
}

var _ ent.Mutation = (*InboxItemMutation)(nil)

// inboxitemOption allows management of the mutation configuration using functional options.
type inboxitemOption func(*InboxItemMutation)

// newInboxItemMutation creates new mutation for the InboxItem entity.
func newInboxItemMutation(c config, op Op, opts ...inboxitemOption) *InboxItemMutation {
	m := &InboxItemMutation{
		config:        c,
		op:            op,
		typ:           TypeInboxItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInboxItemID sets the ID field of the mutation.
func withInboxItemID(id uuid.UUID) inboxitemOption {
	return func(m *InboxItemMutation) {
		var (
			err   error
			once  sync.Once
			value *InboxItem
		)
		m.oldValue = func(ctx context.Context) (*InboxItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InboxItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInboxItem sets the old InboxItem of the mutation.
func withInboxItem(node *InboxItem) inboxitemOption {
	return func(m *InboxItemMutation) {
		m.oldValue = func(context.Context) (*InboxItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InboxItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InboxItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InboxItem entities.
func (m *InboxItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InboxItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InboxItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InboxItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *InboxItemMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *InboxItemMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *InboxItemMutation) ResetFileID() {
	m.file = nil
}

// SetUserID sets the "user_id" field.
func (m *InboxItemMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InboxItemMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InboxItemMutation) ResetUserID() {
	m.user_id = nil
}

// SetUploadedImage sets the "uploaded_image" field.
func (m *InboxItemMutation) SetUploadedImage(s string) {
	m.uploaded_image = &s
}

// UploadedImage returns the value of the "uploaded_image" field in the mutation.
func (m *InboxItemMutation) UploadedImage() (r string, exists bool) {
	v := m.uploaded_image
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedImage returns the old "uploaded_image" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldUploadedImage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedImage: %w", err)
	}
	return oldValue.UploadedImage, nil
}

// ResetUploadedImage resets all changes to the "uploaded_image" field.
func (m *InboxItemMutation) ResetUploadedImage() {
	m.uploaded_image = nil
}

// SetUploadDate sets the "upload_date" field.
func (m *InboxItemMutation) SetUploadDate(t time.Time) {
	m.upload_date = &t
}

// UploadDate returns the value of the "upload_date" field in the mutation.
func (m *InboxItemMutation) UploadDate() (r time.Time, exists bool) {
	v := m.upload_date
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadDate returns the old "upload_date" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldUploadDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadDate: %w", err)
	}
	return oldValue.UploadDate, nil
}

// ResetUploadDate resets all changes to the "upload_date" field.
func (m *InboxItemMutation) ResetUploadDate() {
	m.upload_date = nil
}

// SetState sets the "state" field.
func (m *InboxItemMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *InboxItemMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *InboxItemMutation) ResetState() {
	m.state = nil
}

// SetStatus sets the "status" field.
func (m *InboxItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InboxItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InboxItemMutation) ResetStatus() {
	m.status = nil
}

// SetOcrResults sets the "ocr_results" field.
func (m *InboxItemMutation) SetOcrResults(s string) {
	m.ocr_results = &s
}

// OcrResults returns the value of the "ocr_results" field in the mutation.
func (m *InboxItemMutation) OcrResults() (r string, exists bool) {
	v := m.ocr_results
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrResults returns the old "ocr_results" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldOcrResults(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrResults: %w", err)
	}
	return oldValue.OcrResults, nil
}

// ClearOcrResults clears the value of the "ocr_results" field.
func (m *InboxItemMutation) ClearOcrResults() {
	m.ocr_results = nil
	m.clearedFields[inboxitem.FieldOcrResults] = struct{}{}
}

// OcrResultsCleared returns if the "ocr_results" field was cleared in this mutation.
func (m *InboxItemMutation) OcrResultsCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldOcrResults]
	return ok
}

// ResetOcrResults resets all changes to the "ocr_results" field.
func (m *InboxItemMutation) ResetOcrResults() {
	m.ocr_results = nil
	delete(m.clearedFields, inboxitem.FieldOcrResults)
}

// SetFailureReason sets the "failure_reason" field.
func (m *InboxItemMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *InboxItemMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *InboxItemMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[inboxitem.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *InboxItemMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *InboxItemMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, inboxitem.FieldFailureReason)
}

// SetLinkedEntityID sets the "linked_entity_id" field.
func (m *InboxItemMutation) SetLinkedEntityID(u uuid.UUID) {
	m.linked_entity_id = &u
}

// LinkedEntityID returns the value of the "linked_entity_id" field in the mutation.
func (m *InboxItemMutation) LinkedEntityID() (r uuid.UUID, exists bool) {
	v := m.linked_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedEntityID returns the old "linked_entity_id" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldLinkedEntityID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedEntityID: %w", err)
	}
	return oldValue.LinkedEntityID, nil
}

// ClearLinkedEntityID clears the value of the "linked_entity_id" field.
func (m *InboxItemMutation) ClearLinkedEntityID() {
	m.linked_entity_id = nil
	m.clearedFields[inboxitem.FieldLinkedEntityID] = struct{}{}
}

// LinkedEntityIDCleared returns if the "linked_entity_id" field was cleared in this mutation.
func (m *InboxItemMutation) LinkedEntityIDCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldLinkedEntityID]
	return ok
}

// ResetLinkedEntityID resets all changes to the "linked_entity_id" field.
func (m *InboxItemMutation) ResetLinkedEntityID() {
	m.linked_entity_id = nil
	delete(m.clearedFields, inboxitem.FieldLinkedEntityID)
}

// SetLinkedEntityType sets the "linked_entity_type" field.
func (m *InboxItemMutation) SetLinkedEntityType(s string) {
	m.linked_entity_type = &s
}

// LinkedEntityType returns the value of the "linked_entity_type" field in the mutation.
func (m *InboxItemMutation) LinkedEntityType() (r string, exists bool) {
	v := m.linked_entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedEntityType returns the old "linked_entity_type" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldLinkedEntityType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedEntityType: %w", err)
	}
	return oldValue.LinkedEntityType, nil
}

// ClearLinkedEntityType clears the value of the "linked_entity_type" field.
func (m *InboxItemMutation) ClearLinkedEntityType() {
	m.linked_entity_type = nil
	m.clearedFields[inboxitem.FieldLinkedEntityType] = struct{}{}
}

// LinkedEntityTypeCleared returns if the "linked_entity_type" field was cleared in this mutation.
func (m *InboxItemMutation) LinkedEntityTypeCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldLinkedEntityType]
	return ok
}

// ResetLinkedEntityType resets all changes to the "linked_entity_type" field.
func (m *InboxItemMutation) ResetLinkedEntityType() {
	m.linked_entity_type = nil
	delete(m.clearedFields, inboxitem.FieldLinkedEntityType)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *InboxItemMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *InboxItemMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldRejectionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *InboxItemMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[inboxitem.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *InboxItemMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *InboxItemMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, inboxitem.FieldRejectionReason)
}

// SetRejectedAt sets the "rejected_at" field.
func (m *InboxItemMutation) SetRejectedAt(t time.Time) {
	m.rejected_at = &t
}

// RejectedAt returns the value of the "rejected_at" field in the mutation.
func (m *InboxItemMutation) RejectedAt() (r time.Time, exists bool) {
	v := m.rejected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectedAt returns the old "rejected_at" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldRejectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectedAt: %w", err)
	}
	return oldValue.RejectedAt, nil
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (m *InboxItemMutation) ClearRejectedAt() {
	m.rejected_at = nil
	m.clearedFields[inboxitem.FieldRejectedAt] = struct{}{}
}

// RejectedAtCleared returns if the "rejected_at" field was cleared in this mutation.
func (m *InboxItemMutation) RejectedAtCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldRejectedAt]
	return ok
}

// ResetRejectedAt resets all changes to the "rejected_at" field.
func (m *InboxItemMutation) ResetRejectedAt() {
	m.rejected_at = nil
	delete(m.clearedFields, inboxitem.FieldRejectedAt)
}

// ClearFile clears the "file" edge to the IncomingFile entity.
func (m *InboxItemMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[inboxitem.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the IncomingFile entity was cleared.
func (m *InboxItemMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *InboxItemMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *InboxItemMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the InboxItemMutation builder.
func (m *InboxItemMutation) Where(ps ...predicate.InboxItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InboxItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InboxItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InboxItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InboxItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InboxItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InboxItem).
func (m *InboxItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InboxItemMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.file != nil {
		fields = append(fields, inboxitem.FieldFileID)
	}
	if m.user_id != nil {
		fields = append(fields, inboxitem.FieldUserID)
	}
	if m.uploaded_image != nil {
		fields = append(fields, inboxitem.FieldUploadedImage)
	}
	if m.upload_date != nil {
		fields = append(fields, inboxitem.FieldUploadDate)
	}
	if m.state != nil {
		fields = append(fields, inboxitem.FieldState)
	}
	if m.status != nil {
		fields = append(fields, inboxitem.FieldStatus)
	}
	if m.ocr_results != nil {
		fields = append(fields, inboxitem.FieldOcrResults)
	}
	if m.failure_reason != nil {
		fields = append(fields, inboxitem.FieldFailureReason)
	}
	if m.linked_entity_id != nil {
		fields = append(fields, inboxitem.FieldLinkedEntityID)
	}
	if m.linked_entity_type != nil {
		fields = append(fields, inboxitem.FieldLinkedEntityType)
	}
	if m.rejection_reason != nil {
		fields = append(fields, inboxitem.FieldRejectionReason)
	}
	if m.rejected_at != nil {
		fields = append(fields, inboxitem.FieldRejectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InboxItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inboxitem.FieldFileID:
		return m.FileID()
	case inboxitem.FieldUserID:
		return m.UserID()
	case inboxitem.FieldUploadedImage:
		return m.UploadedImage()
	case inboxitem.FieldUploadDate:
		return m.UploadDate()
	case inboxitem.FieldState:
		return m.State()
	case inboxitem.FieldStatus:
		return m.Status()
	case inboxitem.FieldOcrResults:
		return m.OcrResults()
	case inboxitem.FieldFailureReason:
		return m.FailureReason()
	case inboxitem.FieldLinkedEntityID:
		return m.LinkedEntityID()
	case inboxitem.FieldLinkedEntityType:
		return m.LinkedEntityType()
	case inboxitem.FieldRejectionReason:
		return m.RejectionReason()
	case inboxitem.FieldRejectedAt:
		return m.RejectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InboxItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inboxitem.FieldFileID:
		return m.OldFileID(ctx)
	case inboxitem.FieldUserID:
		return m.OldUserID(ctx)
	case inboxitem.FieldUploadedImage:
		return m.OldUploadedImage(ctx)
	case inboxitem.FieldUploadDate:
		return m.OldUploadDate(ctx)
	case inboxitem.FieldState:
		return m.OldState(ctx)
	case inboxitem.FieldStatus:
		return m.OldStatus(ctx)
	case inboxitem.FieldOcrResults:
		return m.OldOcrResults(ctx)
	case inboxitem.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case inboxitem.FieldLinkedEntityID:
		return m.OldLinkedEntityID(ctx)
	case inboxitem.FieldLinkedEntityType:
		return m.OldLinkedEntityType(ctx)
	case inboxitem.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case inboxitem.FieldRejectedAt:
		return m.OldRejectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InboxItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inboxitem.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case inboxitem.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case inboxitem.FieldUploadedImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedImage(v)
		return nil
	case inboxitem.FieldUploadDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadDate(v)
		return nil
	case inboxitem.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case inboxitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case inboxitem.FieldOcrResults:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrResults(v)
		return nil
	case inboxitem.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case inboxitem.FieldLinkedEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedEntityID(v)
		return nil
	case inboxitem.FieldLinkedEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedEntityType(v)
		return nil
	case inboxitem.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case inboxitem.FieldRejectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InboxItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InboxItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InboxItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InboxItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InboxItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inboxitem.FieldOcrResults) {
		fields = append(fields, inboxitem.FieldOcrResults)
	}
	if m.FieldCleared(inboxitem.FieldFailureReason) {
		fields = append(fields, inboxitem.FieldFailureReason)
	}
	if m.FieldCleared(inboxitem.FieldLinkedEntityID) {
		fields = append(fields, inboxitem.FieldLinkedEntityID)
	}
	if m.FieldCleared(inboxitem.FieldLinkedEntityType) {
		fields = append(fields, inboxitem.FieldLinkedEntityType)
	}
	if m.FieldCleared(inboxitem.FieldRejectionReason) {
		fields = append(fields, inboxitem.FieldRejectionReason)
	}
	if m.FieldCleared(inboxitem.FieldRejectedAt) {
		fields = append(fields, inboxitem.FieldRejectedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InboxItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InboxItemMutation) ClearField(name string) error {
	switch name {
	case inboxitem.FieldOcrResults:
		m.ClearOcrResults()
		return nil
	case inboxitem.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case inboxitem.FieldLinkedEntityID:
		m.ClearLinkedEntityID()
		return nil
	case inboxitem.FieldLinkedEntityType:
		m.ClearLinkedEntityType()
		return nil
	case inboxitem.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	case inboxitem.FieldRejectedAt:
		m.ClearRejectedAt()
		return nil
	}
	return fmt.Errorf("unknown InboxItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InboxItemMutation) ResetField(name string) error {
	switch name {
	case inboxitem.FieldFileID:
		m.ResetFileID()
		return nil
	case inboxitem.FieldUserID:
		m.ResetUserID()
		return nil
	case inboxitem.FieldUploadedImage:
		m.ResetUploadedImage()
		return nil
	case inboxitem.FieldUploadDate:
		m.ResetUploadDate()
		return nil
	case inboxitem.FieldState:
		m.ResetState()
		return nil
	case inboxitem.FieldStatus:
		m.ResetStatus()
		return nil
	case inboxitem.FieldOcrResults:
		m.ResetOcrResults()
		return nil
	case inboxitem.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case inboxitem.FieldLinkedEntityID:
		m.ResetLinkedEntityID()
		return nil
	case inboxitem.FieldLinkedEntityType:
		m.ResetLinkedEntityType()
		return nil
	case inboxitem.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case inboxitem.FieldRejectedAt:
		m.ResetRejectedAt()
		return nil
	}
	return fmt.Errorf("unknown InboxItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InboxItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, inboxitem.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InboxItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case inboxitem.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InboxItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InboxItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InboxItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, inboxitem.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InboxItemMutation) EdgeCleared(name string) bool {
	switch name {
	case inboxitem.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InboxItemMutation) ClearEdge(name string) error {
	switch name {
	case inboxitem.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown InboxItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InboxItemMutation) ResetEdge(name string) error {
	switch name {
	case inboxitem.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown InboxItem edge %s", name)
}

// IncomingFileMutation represents an operation that mutates the IncomingFile nodes in the graph.
type IncomingFileMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	user_id            *uuid.UUID
	filename           *string
	file_path          *string
	file_ext           *string
	file_size          *int
	addfile_size       *int
	checksum           *string
	status             *string
	upload_date        *time.Time
	clearedFields      map[string]struct{}
	inbox_items        map[uuid.UUID]struct{}
	removedinbox_items map[uuid.UUID]struct{}
	clearedinbox_items bool
	done               bool
	oldValue           func(context.Context) (*IncomingFile, error)
	predicates         []predicate.IncomingFile
}

var _ ent.Mutation = (*IncomingFileMutation)(nil)

// incomingfileOption allows management of the mutation configuration using functional options.
type incomingfileOption func(*IncomingFileMutation)

// newIncomingFileMutation creates new mutation for the IncomingFile entity.
func newIncomingFileMutation(c config, op Op, opts ...incomingfileOption) *IncomingFileMutation {
	m := &IncomingFileMutation{
		config:        c,
		op:            op,
		typ:           TypeIncomingFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncomingFileID sets the ID field of the mutation.
func withIncomingFileID(id uuid.UUID) incomingfileOption {
	return func(m *IncomingFileMutation) {
		var (
			err   error
			once  sync.Once
			value *IncomingFile
		)
		m.oldValue = func(ctx context.Context) (*IncomingFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IncomingFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncomingFile sets the old IncomingFile of the mutation.
func withIncomingFile(node *IncomingFile) incomingfileOption {
	return func(m *IncomingFileMutation) {
		m.oldValue = func(context.Context) (*IncomingFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncomingFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncomingFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IncomingFile entities.
func (m *IncomingFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncomingFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncomingFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IncomingFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *IncomingFileMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IncomingFileMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the IncomingFile entity.
// If the IncomingFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomingFileMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IncomingFileMutation) ResetUserID() {
	m.user_id = nil
}

// SetFilename sets the "filename" field.
func (m *IncomingFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *IncomingFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the IncomingFile entity.
// If the IncomingFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomingFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *IncomingFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFilePath sets the "file_path" field.
func (m *IncomingFileMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *IncomingFileMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the IncomingFile entity.
// If the IncomingFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomingFileMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *IncomingFileMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *IncomingFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *IncomingFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the IncomingFile entity.
// If the IncomingFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomingFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *IncomingFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *IncomingFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *IncomingFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the IncomingFile entity.
// If the IncomingFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomingFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *IncomingFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *IncomingFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *IncomingFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetChecksum sets the "checksum" field.
func (m *IncomingFileMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *IncomingFileMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the IncomingFile entity.
// If the IncomingFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomingFileMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *IncomingFileMutation) ResetChecksum() {
	m.checksum = nil
}

// SetStatus sets the "status" field.
func (m *IncomingFileMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *IncomingFileMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IncomingFile entity.
// If the IncomingFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomingFileMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IncomingFileMutation) ResetStatus() {
	m.status = nil
}

// SetUploadDate sets the "upload_date" field.
func (m *IncomingFileMutation) SetUploadDate(t time.Time) {
	m.upload_date = &t
}

// UploadDate returns the value of the "upload_date" field in the mutation.
func (m *IncomingFileMutation) UploadDate() (r time.Time, exists bool) {
	v := m.upload_date
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadDate returns the old "upload_date" field's value of the IncomingFile entity.
// If the IncomingFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomingFileMutation) OldUploadDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadDate: %w", err)
	}
	return oldValue.UploadDate, nil
}

// ResetUploadDate resets all changes to the "upload_date" field.
func (m *IncomingFileMutation) ResetUploadDate() {
	m.upload_date = nil
}

// AddInboxItemIDs adds the "inbox_items" edge to the InboxItem entity by ids.
func (m *IncomingFileMutation) AddInboxItemIDs(ids ...uuid.UUID) {
	if m.inbox_items == nil {
		m.inbox_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.inbox_items[ids[i]] = struct{}{}
	}
}

// ClearInboxItems clears the "inbox_items" edge to the InboxItem entity.
func (m *IncomingFileMutation) ClearInboxItems() {
	m.clearedinbox_items = true
}

// InboxItemsCleared reports if the "inbox_items" edge to the InboxItem entity was cleared.
func (m *IncomingFileMutation) InboxItemsCleared() bool {
	return m.clearedinbox_items
}

// RemoveInboxItemIDs removes the "inbox_items" edge to the InboxItem entity by IDs.
func (m *IncomingFileMutation) RemoveInboxItemIDs(ids ...uuid.UUID) {
	if m.removedinbox_items == nil {
		m.removedinbox_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.inbox_items, ids[i])
		m.removedinbox_items[ids[i]] = struct{}{}
	}
}

// RemovedInboxItems returns the removed IDs of the "inbox_items" edge to the InboxItem entity.
func (m *IncomingFileMutation) RemovedInboxItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedinbox_items {
		ids = append(ids, id)
	}
	return
}

// InboxItemsIDs returns the "inbox_items" edge IDs in the mutation.
func (m *IncomingFileMutation) InboxItemsIDs() (ids []uuid.UUID) {
	for id := range m.inbox_items {
		ids = append(ids, id)
	}
	return
}

// ResetInboxItems resets all changes to the "inbox_items" edge.
func (m *IncomingFileMutation) ResetInboxItems() {
	m.inbox_items = nil
	m.clearedinbox_items = false
	m.removedinbox_items = nil
}

// Where appends a list predicates to the IncomingFileMutation builder.
func (m *IncomingFileMutation) Where(ps ...predicate.IncomingFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncomingFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncomingFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IncomingFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncomingFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncomingFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IncomingFile).
func (m *IncomingFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncomingFileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, incomingfile.FieldUserID)
	}
	if m.filename != nil {
		fields = append(fields, incomingfile.FieldFilename)
	}
	if m.file_path != nil {
		fields = append(fields, incomingfile.FieldFilePath)
	}
	if m.file_ext != nil {
		fields = append(fields, incomingfile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, incomingfile.FieldFileSize)
	}
	if m.checksum != nil {
		fields = append(fields, incomingfile.FieldChecksum)
	}
	if m.status != nil {
		fields = append(fields, incomingfile.FieldStatus)
	}
	if m.upload_date != nil {
		fields = append(fields, incomingfile.FieldUploadDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncomingFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incomingfile.FieldUserID:
		return m.UserID()
	case incomingfile.FieldFilename:
		return m.Filename()
	case incomingfile.FieldFilePath:
		return m.FilePath()
	case incomingfile.FieldFileExt:
		return m.FileExt()
	case incomingfile.FieldFileSize:
		return m.FileSize()
	case incomingfile.FieldChecksum:
		return m.Checksum()
	case incomingfile.FieldStatus:
		return m.Status()
	case incomingfile.FieldUploadDate:
		return m.UploadDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncomingFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incomingfile.FieldUserID:
		return m.OldUserID(ctx)
	case incomingfile.FieldFilename:
		return m.OldFilename(ctx)
	case incomingfile.FieldFilePath:
		return m.OldFilePath(ctx)
	case incomingfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case incomingfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case incomingfile.FieldChecksum:
		return m.OldChecksum(ctx)
	case incomingfile.FieldStatus:
		return m.OldStatus(ctx)
	case incomingfile.FieldUploadDate:
		return m.OldUploadDate(ctx)
	}
	return nil, fmt.Errorf("unknown IncomingFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncomingFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incomingfile.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case incomingfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case incomingfile.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case incomingfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case incomingfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case incomingfile.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case incomingfile.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case incomingfile.FieldUploadDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadDate(v)
		return nil
	}
	return fmt.Errorf("unknown IncomingFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncomingFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, incomingfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncomingFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case incomingfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncomingFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case incomingfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown IncomingFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncomingFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncomingFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncomingFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IncomingFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncomingFileMutation) ResetField(name string) error {
	switch name {
	case incomingfile.FieldUserID:
		m.ResetUserID()
		return nil
	case incomingfile.FieldFilename:
		m.ResetFilename()
		return nil
	case incomingfile.FieldFilePath:
		m.ResetFilePath()
		return nil
	case incomingfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case incomingfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case incomingfile.FieldChecksum:
		m.ResetChecksum()
		return nil
	case incomingfile.FieldStatus:
		m.ResetStatus()
		return nil
	case incomingfile.FieldUploadDate:
		m.ResetUploadDate()
		return nil
	}
	return fmt.Errorf("unknown IncomingFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncomingFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.inbox_items != nil {
		edges = append(edges, incomingfile.EdgeInboxItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncomingFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incomingfile.EdgeInboxItems:
		ids := make([]ent.Value, 0, len(m.inbox_items))
		for id := range m.inbox_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncomingFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinbox_items != nil {
		edges = append(edges, incomingfile.EdgeInboxItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncomingFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case incomingfile.EdgeInboxItems:
		ids := make([]ent.Value, 0, len(m.removedinbox_items))
		for id := range m.removedinbox_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncomingFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinbox_items {
		edges = append(edges, incomingfile.EdgeInboxItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncomingFileMutation) EdgeCleared(name string) bool {
	switch name {
	case incomingfile.EdgeInboxItems:
		return m.clearedinbox_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncomingFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown IncomingFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncomingFileMutation) ResetEdge(name string) error {
	switch name {
	case incomingfile.EdgeInboxItems:
		m.ResetInboxItems()
		return nil
	}
	return fmt.Errorf("unknown IncomingFile edge %s", name)
}

// ReceiptMutation represents an operation that mutates the Receipt nodes in the graph.
type ReceiptMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	user_id                 *uuid.UUID
	payment_type_id         *uuid.UUID
	date                    *time.Time
	amount                  *float64
	addamount               *float64
	description             *string
	inbox_item_id           *uuid.UUID
	state                   *string
	created_date            *time.Time
	clearedFields           map[string]struct{}
	service_provider        *uuid.UUID
	clearedservice_provider bool
	done                    bool
	oldValue                func(context.Context) (*Receipt, error)
	predicates              []predicate.Receipt
}

var _ ent.Mutation = (*ReceiptMutation)(nil)

// receiptOption allows management of the mutation configuration using functional options.
type receiptOption func(*ReceiptMutation)

// newReceiptMutation creates new mutation for the Receipt entity.
func newReceiptMutation(c config, op Op, opts ...receiptOption) *ReceiptMutation {
	m := &ReceiptMutation{
		config:        c,
		op:            op,
		typ:           TypeReceipt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptID sets the ID field of the mutation.
func withReceiptID(id uuid.UUID) receiptOption {
	return func(m *ReceiptMutation) {
		var (
			err   error
			once  sync.Once
			value *Receipt
		)
		m.oldValue = func(ctx context.Context) (*Receipt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Receipt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceipt sets the old Receipt of the mutation.
func withReceipt(node *Receipt) receiptOption {
	return func(m *ReceiptMutation) {
		m.oldValue = func(context.Context) (*Receipt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Receipt entities.
func (m *ReceiptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Receipt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReceiptMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReceiptMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReceiptMutation) ResetUserID() {
	m.user_id = nil
}

// SetServiceProviderID sets the "service_provider_id" field.
func (m *ReceiptMutation) SetServiceProviderID(u uuid.UUID) {
	m.service_provider = &u
}

// ServiceProviderID returns the value of the "service_provider_id" field in the mutation.
func (m *ReceiptMutation) ServiceProviderID() (r uuid.UUID, exists bool) {
	v := m.service_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceProviderID returns the old "service_provider_id" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldServiceProviderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceProviderID: %w", err)
	}
	return oldValue.ServiceProviderID, nil
}

// ResetServiceProviderID resets all changes to the "service_provider_id" field.
func (m *ReceiptMutation) ResetServiceProviderID() {
	m.service_provider = nil
}

// SetPaymentTypeID sets the "payment_type_id" field.
func (m *ReceiptMutation) SetPaymentTypeID(u uuid.UUID) {
	m.payment_type_id = &u
}

// PaymentTypeID returns the value of the "payment_type_id" field in the mutation.
func (m *ReceiptMutation) PaymentTypeID() (r uuid.UUID, exists bool) {
	v := m.payment_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentTypeID returns the old "payment_type_id" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldPaymentTypeID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentTypeID: %w", err)
	}
	return oldValue.PaymentTypeID, nil
}

// ClearPaymentTypeID clears the value of the "payment_type_id" field.
func (m *ReceiptMutation) ClearPaymentTypeID() {
	m.payment_type_id = nil
	m.clearedFields[receipt.FieldPaymentTypeID] = struct{}{}
}

// PaymentTypeIDCleared returns if the "payment_type_id" field was cleared in this mutation.
func (m *ReceiptMutation) PaymentTypeIDCleared() bool {
	_, ok := m.clearedFields[receipt.FieldPaymentTypeID]
	return ok
}

// ResetPaymentTypeID resets all changes to the "payment_type_id" field.
func (m *ReceiptMutation) ResetPaymentTypeID() {
	m.payment_type_id = nil
	delete(m.clearedFields, receipt.FieldPaymentTypeID)
}

// SetDate sets the "date" field.
func (m *ReceiptMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *ReceiptMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *ReceiptMutation) ResetDate() {
	m.date = nil
}

// SetAmount sets the "amount" field.
func (m *ReceiptMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ReceiptMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ReceiptMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ReceiptMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *ReceiptMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetDescription sets the "description" field.
func (m *ReceiptMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ReceiptMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ReceiptMutation) ResetDescription() {
	m.description = nil
}

// SetInboxItemID sets the "inbox_item_id" field.
func (m *ReceiptMutation) SetInboxItemID(u uuid.UUID) {
	m.inbox_item_id = &u
}

// InboxItemID returns the value of the "inbox_item_id" field in the mutation.
func (m *ReceiptMutation) InboxItemID() (r uuid.UUID, exists bool) {
	v := m.inbox_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInboxItemID returns the old "inbox_item_id" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldInboxItemID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboxItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboxItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboxItemID: %w", err)
	}
	return oldValue.InboxItemID, nil
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (m *ReceiptMutation) ClearInboxItemID() {
	m.inbox_item_id = nil
	m.clearedFields[receipt.FieldInboxItemID] = struct{}{}
}

// InboxItemIDCleared returns if the "inbox_item_id" field was cleared in this mutation.
func (m *ReceiptMutation) InboxItemIDCleared() bool {
	_, ok := m.clearedFields[receipt.FieldInboxItemID]
	return ok
}

// ResetInboxItemID resets all changes to the "inbox_item_id" field.
func (m *ReceiptMutation) ResetInboxItemID() {
	m.inbox_item_id = nil
	delete(m.clearedFields, receipt.FieldInboxItemID)
}

// SetState sets the "state" field.
func (m *ReceiptMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ReceiptMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ReceiptMutation) ResetState() {
	m.state = nil
}

// SetCreatedDate sets the "created_date" field.
func (m *ReceiptMutation) SetCreatedDate(t time.Time) {
	m.created_date = &t
}

// CreatedDate returns the value of the "created_date" field in the mutation.
func (m *ReceiptMutation) CreatedDate() (r time.Time, exists bool) {
	v := m.created_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedDate returns the old "created_date" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCreatedDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedDate: %w", err)
	}
	return oldValue.CreatedDate, nil
}

// ResetCreatedDate resets all changes to the "created_date" field.
func (m *ReceiptMutation) ResetCreatedDate() {
	m.created_date = nil
}

// ClearServiceProvider clears the "service_provider" edge to the ServiceProvider entity.
func (m *ReceiptMutation) ClearServiceProvider() {
	m.clearedservice_provider = true
	m.clearedFields[receipt.FieldServiceProviderID] = struct{}{}
}

// ServiceProviderCleared reports if the "service_provider" edge to the ServiceProvider entity was cleared.
func (m *ReceiptMutation) ServiceProviderCleared() bool {
	return m.clearedservice_provider
}

// ServiceProviderIDs returns the "service_provider" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServiceProviderID instead. It exists only for internal usage by the builders.
func (m *ReceiptMutation) ServiceProviderIDs() (ids []uuid.UUID) {
	if id := m.service_provider; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServiceProvider resets all changes to the "service_provider" edge.
func (m *ReceiptMutation) ResetServiceProvider() {
	m.service_provider = nil
	m.clearedservice_provider = false
}

// Where appends a list predicates to the ReceiptMutation builder.
func (m *ReceiptMutation) Where(ps ...predicate.Receipt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Receipt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Receipt).
func (m *ReceiptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, receipt.FieldUserID)
	}
	if m.service_provider != nil {
		fields = append(fields, receipt.FieldServiceProviderID)
	}
	if m.payment_type_id != nil {
		fields = append(fields, receipt.FieldPaymentTypeID)
	}
	if m.date != nil {
		fields = append(fields, receipt.FieldDate)
	}
	if m.amount != nil {
		fields = append(fields, receipt.FieldAmount)
	}
	if m.description != nil {
		fields = append(fields, receipt.FieldDescription)
	}
	if m.inbox_item_id != nil {
		fields = append(fields, receipt.FieldInboxItemID)
	}
	if m.state != nil {
		fields = append(fields, receipt.FieldState)
	}
	if m.created_date != nil {
		fields = append(fields, receipt.FieldCreatedDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldUserID:
		return m.UserID()
	case receipt.FieldServiceProviderID:
		return m.ServiceProviderID()
	case receipt.FieldPaymentTypeID:
		return m.PaymentTypeID()
	case receipt.FieldDate:
		return m.Date()
	case receipt.FieldAmount:
		return m.Amount()
	case receipt.FieldDescription:
		return m.Description()
	case receipt.FieldInboxItemID:
		return m.InboxItemID()
	case receipt.FieldState:
		return m.State()
	case receipt.FieldCreatedDate:
		return m.CreatedDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receipt.FieldUserID:
		return m.OldUserID(ctx)
	case receipt.FieldServiceProviderID:
		return m.OldServiceProviderID(ctx)
	case receipt.FieldPaymentTypeID:
		return m.OldPaymentTypeID(ctx)
	case receipt.FieldDate:
		return m.OldDate(ctx)
	case receipt.FieldAmount:
		return m.OldAmount(ctx)
	case receipt.FieldDescription:
		return m.OldDescription(ctx)
	case receipt.FieldInboxItemID:
		return m.OldInboxItemID(ctx)
	case receipt.FieldState:
		return m.OldState(ctx)
	case receipt.FieldCreatedDate:
		return m.OldCreatedDate(ctx)
	}
	return nil, fmt.Errorf("unknown Receipt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case receipt.FieldServiceProviderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceProviderID(v)
		return nil
	case receipt.FieldPaymentTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentTypeID(v)
		return nil
	case receipt.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case receipt.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case receipt.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case receipt.FieldInboxItemID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboxItemID(v)
		return nil
	case receipt.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case receipt.FieldCreatedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedDate(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, receipt.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receipt.FieldPaymentTypeID) {
		fields = append(fields, receipt.FieldPaymentTypeID)
	}
	if m.FieldCleared(receipt.FieldInboxItemID) {
		fields = append(fields, receipt.FieldInboxItemID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptMutation) ClearField(name string) error {
	switch name {
	case receipt.FieldPaymentTypeID:
		m.ClearPaymentTypeID()
		return nil
	case receipt.FieldInboxItemID:
		m.ClearInboxItemID()
		return nil
	}
	return fmt.Errorf("unknown Receipt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptMutation) ResetField(name string) error {
	switch name {
	case receipt.FieldUserID:
		m.ResetUserID()
		return nil
	case receipt.FieldServiceProviderID:
		m.ResetServiceProviderID()
		return nil
	case receipt.FieldPaymentTypeID:
		m.ResetPaymentTypeID()
		return nil
	case receipt.FieldDate:
		m.ResetDate()
		return nil
	case receipt.FieldAmount:
		m.ResetAmount()
		return nil
	case receipt.FieldDescription:
		m.ResetDescription()
		return nil
	case receipt.FieldInboxItemID:
		m.ResetInboxItemID()
		return nil
	case receipt.FieldState:
		m.ResetState()
		return nil
	case receipt.FieldCreatedDate:
		m.ResetCreatedDate()
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.service_provider != nil {
		edges = append(edges, receipt.EdgeServiceProvider)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receipt.EdgeServiceProvider:
		if id := m.service_provider; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedservice_provider {
		edges = append(edges, receipt.EdgeServiceProvider)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptMutation) EdgeCleared(name string) bool {
	switch name {
	case receipt.EdgeServiceProvider:
		return m.clearedservice_provider
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptMutation) ClearEdge(name string) error {
	switch name {
	case receipt.EdgeServiceProvider:
		m.ClearServiceProvider()
		return nil
	}
	return fmt.Errorf("unknown Receipt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptMutation) ResetEdge(name string) error {
	switch name {
	case receipt.EdgeServiceProvider:
		m.ResetServiceProvider()
		return nil
	}
	return fmt.Errorf("unknown Receipt edge %s", name)
}

// ServiceProviderMutation represents an operation that mutates the ServiceProvider nodes in the graph.
type ServiceProviderMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	avatar              *string
	comment             *string
	comment_for_ocr     *string
	regular             *string
	custom_fields       *json.RawMessage
	appendcustom_fields json.RawMessage
	state               *string
	created_date        *time.Time
	modified_date       *time.Time
	clearedFields       map[string]struct{}
	bills               map[uuid.UUID]struct{}
	removedbills        map[uuid.UUID]struct{}
	clearedbills        bool
	receipts            map[uuid.UUID]struct{}
	removedreceipts     map[uuid.UUID]struct{}
	clearedreceipts     bool
	done                bool
	oldValue            func(context.Context) (*ServiceProvider, error)
	predicates          []predicate.ServiceProvider
}

var _ ent.Mutation = (*ServiceProviderMutation)(nil)

// serviceproviderOption allows management of the mutation configuration using functional options.
type serviceproviderOption func(*ServiceProviderMutation)

// newServiceProviderMutation creates new mutation for the ServiceProvider entity.
func newServiceProviderMutation(c config, op Op, opts ...serviceproviderOption) *ServiceProviderMutation {
	m := &ServiceProviderMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceProvider,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceProviderID sets the ID field of the mutation.
func withServiceProviderID(id uuid.UUID) serviceproviderOption {
	return func(m *ServiceProviderMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceProvider
		)
		m.oldValue = func(ctx context.Context) (*ServiceProvider, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceProvider.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceProvider sets the old ServiceProvider of the mutation.
func withServiceProvider(node *ServiceProvider) serviceproviderOption {
	return func(m *ServiceProviderMutation) {
		m.oldValue = func(context.Context) (*ServiceProvider, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceProviderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceProviderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServiceProvider entities.
func (m *ServiceProviderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceProviderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceProviderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceProvider.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ServiceProviderMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ServiceProviderMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ServiceProvider entity.
// If the ServiceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceProviderMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ServiceProviderMutation) ResetName() {
	m.name = nil
}

// SetAvatar sets the "avatar" field.
func (m *ServiceProviderMutation) SetAvatar(s string) {
	m.avatar = &s
}

// Avatar returns the value of the "avatar" field in the mutation.
func (m *ServiceProviderMutation) Avatar() (r string, exists bool) {
	v := m.avatar
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatar returns the old "avatar" field's value of the ServiceProvider entity.
// If the ServiceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceProviderMutation) OldAvatar(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatar: %w", err)
	}
	return oldValue.Avatar, nil
}

// ClearAvatar clears the value of the "avatar" field.
func (m *ServiceProviderMutation) ClearAvatar() {
	m.avatar = nil
	m.clearedFields[serviceprovider.FieldAvatar] = struct{}{}
}

// AvatarCleared returns if the "avatar" field was cleared in this mutation.
func (m *ServiceProviderMutation) AvatarCleared() bool {
	_, ok := m.clearedFields[serviceprovider.FieldAvatar]
	return ok
}

// ResetAvatar resets all changes to the "avatar" field.
func (m *ServiceProviderMutation) ResetAvatar() {
	m.avatar = nil
	delete(m.clearedFields, serviceprovider.FieldAvatar)
}

// SetComment sets the "comment" field.
func (m *ServiceProviderMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *ServiceProviderMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the ServiceProvider entity.
// If the ServiceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceProviderMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ResetComment resets all changes to the "comment" field.
func (m *ServiceProviderMutation) ResetComment() {
	m.comment = nil
}

// SetCommentForOcr sets the "comment_for_ocr" field.
func (m *ServiceProviderMutation) SetCommentForOcr(s string) {
	m.comment_for_ocr = &s
}

// CommentForOcr returns the value of the "comment_for_ocr" field in the mutation.
func (m *ServiceProviderMutation) CommentForOcr() (r string, exists bool) {
	v := m.comment_for_ocr
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentForOcr returns the old "comment_for_ocr" field's value of the ServiceProvider entity.
// If the ServiceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceProviderMutation) OldCommentForOcr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentForOcr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentForOcr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentForOcr: %w", err)
	}
	return oldValue.CommentForOcr, nil
}

// ResetCommentForOcr resets all changes to the "comment_for_ocr" field.
func (m *ServiceProviderMutation) ResetCommentForOcr() {
	m.comment_for_ocr = nil
}

// SetRegular sets the "regular" field.
func (m *ServiceProviderMutation) SetRegular(s string) {
	m.regular = &s
}

// Regular returns the value of the "regular" field in the mutation.
func (m *ServiceProviderMutation) Regular() (r string, exists bool) {
	v := m.regular
	if v == nil {
		return
	}
	return *v, true
}

// OldRegular returns the old "regular" field's value of the ServiceProvider entity.
// If the ServiceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceProviderMutation) OldRegular(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegular is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegular requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegular: %w", err)
	}
	return oldValue.Regular, nil
}

// ResetRegular resets all changes to the "regular" field.
func (m *ServiceProviderMutation) ResetRegular() {
	m.regular = nil
}

// SetCustomFields sets the "custom_fields" field.
func (m *ServiceProviderMutation) SetCustomFields(jm json.RawMessage) {
	m.custom_fields = &jm
	m.appendcustom_fields = nil
}

// CustomFields returns the value of the "custom_fields" field in the mutation.
func (m *ServiceProviderMutation) CustomFields() (r json.RawMessage, exists bool) {
	v := m.custom_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomFields returns the old "custom_fields" field's value of the ServiceProvider entity.
// If the ServiceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceProviderMutation) OldCustomFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomFields: %w", err)
	}
	return oldValue.CustomFields, nil
}

// AppendCustomFields adds jm to the "custom_fields" field.
func (m *ServiceProviderMutation) AppendCustomFields(jm json.RawMessage) {
	m.appendcustom_fields = append(m.appendcustom_fields, jm...)
}

// AppendedCustomFields returns the list of values that were appended to the "custom_fields" field in this mutation.
func (m *ServiceProviderMutation) AppendedCustomFields() (json.RawMessage, bool) {
	if len(m.appendcustom_fields) == 0 {
		return nil, false
	}
	return m.appendcustom_fields, true
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (m *ServiceProviderMutation) ClearCustomFields() {
	m.custom_fields = nil
	m.appendcustom_fields = nil
	m.clearedFields[serviceprovider.FieldCustomFields] = struct{}{}
}

// CustomFieldsCleared returns if the "custom_fields" field was cleared in this mutation.
func (m *ServiceProviderMutation) CustomFieldsCleared() bool {
	_, ok := m.clearedFields[serviceprovider.FieldCustomFields]
	return ok
}

// ResetCustomFields resets all changes to the "custom_fields" field.
func (m *ServiceProviderMutation) ResetCustomFields() {
	m.custom_fields = nil
	m.appendcustom_fields = nil
	delete(m.clearedFields, serviceprovider.FieldCustomFields)
}

// SetState sets the "state" field.
func (m *ServiceProviderMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ServiceProviderMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ServiceProvider entity.
// If the ServiceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceProviderMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ServiceProviderMutation) ResetState() {
	m.state = nil
}

// SetCreatedDate sets the "created_date" field.
func (m *ServiceProviderMutation) SetCreatedDate(t time.Time) {
	m.created_date = &t
}

// CreatedDate returns the value of the "created_date" field in the mutation.
func (m *ServiceProviderMutation) CreatedDate() (r time.Time, exists bool) {
	v := m.created_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedDate returns the old "created_date" field's value of the ServiceProvider entity.
// If the ServiceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceProviderMutation) OldCreatedDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedDate: %w", err)
	}
	return oldValue.CreatedDate, nil
}

// ResetCreatedDate resets all changes to the "created_date" field.
func (m *ServiceProviderMutation) ResetCreatedDate() {
	m.created_date = nil
}

// SetModifiedDate sets the "modified_date" field.
func (m *ServiceProviderMutation) SetModifiedDate(t time.Time) {
	m.modified_date = &t
}

// ModifiedDate returns the value of the "modified_date" field in the mutation.
func (m *ServiceProviderMutation) ModifiedDate() (r time.Time, exists bool) {
	v := m.modified_date
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedDate returns the old "modified_date" field's value of the ServiceProvider entity.
// If the ServiceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceProviderMutation) OldModifiedDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedDate: %w", err)
	}
	return oldValue.ModifiedDate, nil
}

// ResetModifiedDate resets all changes to the "modified_date" field.
func (m *ServiceProviderMutation) ResetModifiedDate() {
	m.modified_date = nil
}

// AddBillIDs adds the "bills" edge to the Bill entity by ids.
func (m *ServiceProviderMutation) AddBillIDs(ids ...uuid.UUID) {
	if m.bills == nil {
		m.bills = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bills[ids[i]] = struct{}{}
	}
}

// ClearBills clears the "bills" edge to the Bill entity.
func (m *ServiceProviderMutation) ClearBills() {
	m.clearedbills = true
}

// BillsCleared reports if the "bills" edge to the Bill entity was cleared.
func (m *ServiceProviderMutation) BillsCleared() bool {
	return m.clearedbills
}

// RemoveBillIDs removes the "bills" edge to the Bill entity by IDs.
func (m *ServiceProviderMutation) RemoveBillIDs(ids ...uuid.UUID) {
	if m.removedbills == nil {
		m.removedbills = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bills, ids[i])
		m.removedbills[ids[i]] = struct{}{}
	}
}

// RemovedBills returns the removed IDs of the "bills" edge to the Bill entity.
func (m *ServiceProviderMutation) RemovedBillsIDs() (ids []uuid.UUID) {
	for id := range m.removedbills {
		ids = append(ids, id)
	}
	return
}

// BillsIDs returns the "bills" edge IDs in the mutation.
func (m *ServiceProviderMutation) BillsIDs() (ids []uuid.UUID) {
	for id := range m.bills {
		ids = append(ids, id)
	}
	return
}

// ResetBills resets all changes to the "bills" edge.
func (m *ServiceProviderMutation) ResetBills() {
	m.bills = nil
	m.clearedbills = false
	m.removedbills = nil
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by ids.
func (m *ServiceProviderMutation) AddReceiptIDs(ids ...uuid.UUID) {
	if m.receipts == nil {
		m.receipts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.receipts[ids[i]] = struct{}{}
	}
}

// ClearReceipts clears the "receipts" edge to the Receipt entity.
func (m *ServiceProviderMutation) ClearReceipts() {
	m.clearedreceipts = true
}

// ReceiptsCleared reports if the "receipts" edge to the Receipt entity was cleared.
func (m *ServiceProviderMutation) ReceiptsCleared() bool {
	return m.clearedreceipts
}

// RemoveReceiptIDs removes the "receipts" edge to the Receipt entity by IDs.
func (m *ServiceProviderMutation) RemoveReceiptIDs(ids ...uuid.UUID) {
	if m.removedreceipts == nil {
		m.removedreceipts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.receipts, ids[i])
		m.removedreceipts[ids[i]] = struct{}{}
	}
}

// RemovedReceipts returns the removed IDs of the "receipts" edge to the Receipt entity.
func (m *ServiceProviderMutation) RemovedReceiptsIDs() (ids []uuid.UUID) {
	for id := range m.removedreceipts {
		ids = append(ids, id)
	}
	return
}

// ReceiptsIDs returns the "receipts" edge IDs in the mutation.
func (m *ServiceProviderMutation) ReceiptsIDs() (ids []uuid.UUID) {
	for id := range m.receipts {
		ids = append(ids, id)
	}
	return
}

// ResetReceipts resets all changes to the "receipts" edge.
func (m *ServiceProviderMutation) ResetReceipts() {
	m.receipts = nil
	m.clearedreceipts = false
	m.removedreceipts = nil
}

// Where appends a list predicates to the ServiceProviderMutation builder.
func (m *ServiceProviderMutation) Where(ps ...predicate.ServiceProvider) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceProviderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceProviderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceProvider, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceProviderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceProviderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceProvider).
func (m *ServiceProviderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceProviderMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, serviceprovider.FieldName)
	}
	if m.avatar != nil {
		fields = append(fields, serviceprovider.FieldAvatar)
	}
	if m.comment != nil {
		fields = append(fields, serviceprovider.FieldComment)
	}
	if m.comment_for_ocr != nil {
		fields = append(fields, serviceprovider.FieldCommentForOcr)
	}
	if m.regular != nil {
		fields = append(fields, serviceprovider.FieldRegular)
	}
	if m.custom_fields != nil {
		fields = append(fields, serviceprovider.FieldCustomFields)
	}
	if m.state != nil {
		fields = append(fields, serviceprovider.FieldState)
	}
	if m.created_date != nil {
		fields = append(fields, serviceprovider.FieldCreatedDate)
	}
	if m.modified_date != nil {
		fields = append(fields, serviceprovider.FieldModifiedDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceProviderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case serviceprovider.FieldName:
		return m.Name()
	case serviceprovider.FieldAvatar:
		return m.Avatar()
	case serviceprovider.FieldComment:
		return m.Comment()
	case serviceprovider.FieldCommentForOcr:
		return m.CommentForOcr()
	case serviceprovider.FieldRegular:
		return m.Regular()
	case serviceprovider.FieldCustomFields:
		return m.CustomFields()
	case serviceprovider.FieldState:
		return m.State()
	case serviceprovider.FieldCreatedDate:
		return m.CreatedDate()
	case serviceprovider.FieldModifiedDate:
		return m.ModifiedDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceProviderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case serviceprovider.FieldName:
		return m.OldName(ctx)
	case serviceprovider.FieldAvatar:
		return m.OldAvatar(ctx)
	case serviceprovider.FieldComment:
		return m.OldComment(ctx)
	case serviceprovider.FieldCommentForOcr:
		return m.OldCommentForOcr(ctx)
	case serviceprovider.FieldRegular:
		return m.OldRegular(ctx)
	case serviceprovider.FieldCustomFields:
		return m.OldCustomFields(ctx)
	case serviceprovider.FieldState:
		return m.OldState(ctx)
	case serviceprovider.FieldCreatedDate:
		return m.OldCreatedDate(ctx)
	case serviceprovider.FieldModifiedDate:
		return m.OldModifiedDate(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceProvider field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceProviderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case serviceprovider.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case serviceprovider.FieldAvatar:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatar(v)
		return nil
	case serviceprovider.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case serviceprovider.FieldCommentForOcr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentForOcr(v)
		return nil
	case serviceprovider.FieldRegular:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegular(v)
		return nil
	case serviceprovider.FieldCustomFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomFields(v)
		return nil
	case serviceprovider.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case serviceprovider.FieldCreatedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedDate(v)
		return nil
	case serviceprovider.FieldModifiedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedDate(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceProvider field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceProviderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceProviderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceProviderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServiceProvider numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceProviderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(serviceprovider.FieldAvatar) {
		fields = append(fields, serviceprovider.FieldAvatar)
	}
	if m.FieldCleared(serviceprovider.FieldCustomFields) {
		fields = append(fields, serviceprovider.FieldCustomFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceProviderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceProviderMutation) ClearField(name string) error {
	switch name {
	case serviceprovider.FieldAvatar:
		m.ClearAvatar()
		return nil
	case serviceprovider.FieldCustomFields:
		m.ClearCustomFields()
		return nil
	}
	return fmt.Errorf("unknown ServiceProvider nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceProviderMutation) ResetField(name string) error {
	switch name {
	case serviceprovider.FieldName:
		m.ResetName()
		return nil
	case serviceprovider.FieldAvatar:
		m.ResetAvatar()
		return nil
	case serviceprovider.FieldComment:
		m.ResetComment()
		return nil
	case serviceprovider.FieldCommentForOcr:
		m.ResetCommentForOcr()
		return nil
	case serviceprovider.FieldRegular:
		m.ResetRegular()
		return nil
	case serviceprovider.FieldCustomFields:
		m.ResetCustomFields()
		return nil
	case serviceprovider.FieldState:
		m.ResetState()
		return nil
	case serviceprovider.FieldCreatedDate:
		m.ResetCreatedDate()
		return nil
	case serviceprovider.FieldModifiedDate:
		m.ResetModifiedDate()
		return nil
	}
	return fmt.Errorf("unknown ServiceProvider field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceProviderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.bills != nil {
		edges = append(edges, serviceprovider.EdgeBills)
	}
	if m.receipts != nil {
		edges = append(edges, serviceprovider.EdgeReceipts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceProviderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case serviceprovider.EdgeBills:
		ids := make([]ent.Value, 0, len(m.bills))
		for id := range m.bills {
			ids = append(ids, id)
		}
		return ids
	case serviceprovider.EdgeReceipts:
		ids := make([]ent.Value, 0, len(m.receipts))
		for id := range m.receipts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceProviderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedbills != nil {
		edges = append(edges, serviceprovider.EdgeBills)
	}
	if m.removedreceipts != nil {
		edges = append(edges, serviceprovider.EdgeReceipts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceProviderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case serviceprovider.EdgeBills:
		ids := make([]ent.Value, 0, len(m.removedbills))
		for id := range m.removedbills {
			ids = append(ids, id)
		}
		return ids
	case serviceprovider.EdgeReceipts:
		ids := make([]ent.Value, 0, len(m.removedreceipts))
		for id := range m.removedreceipts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceProviderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbills {
		edges = append(edges, serviceprovider.EdgeBills)
	}
	if m.clearedreceipts {
		edges = append(edges, serviceprovider.EdgeReceipts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceProviderMutation) EdgeCleared(name string) bool {
	switch name {
	case serviceprovider.EdgeBills:
		return m.clearedbills
	case serviceprovider.EdgeReceipts:
		return m.clearedreceipts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceProviderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ServiceProvider unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceProviderMutation) ResetEdge(name string) error {
	switch name {
	case serviceprovider.EdgeBills:
		m.ResetBills()
		return nil
	case serviceprovider.EdgeReceipts:
		m.ResetReceipts()
		return nil
	}
	return fmt.Errorf("unknown ServiceProvider edge %s", name)
}
