// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docledger/docledger/gen/ent/inboxitem"
	"github.com/docledger/docledger/gen/ent/incomingfile"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/google/uuid"
)

// IncomingFileQuery is the builder for querying IncomingFile entities.
type IncomingFileQuery struct {
	config
	ctx            *QueryContext
	order          []incomingfile.OrderOption
	inters         []Interceptor
	predicates     []predicate.IncomingFile
	withInboxItems *InboxItemQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the IncomingFileQuery builder.
func (_q *IncomingFileQuery) Where(ps ...predicate.IncomingFile) *IncomingFileQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *IncomingFileQuery) Limit(limit int) *IncomingFileQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *IncomingFileQuery) Offset(offset int) *IncomingFileQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *IncomingFileQuery) Unique(unique bool) *IncomingFileQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *IncomingFileQuery) Order(o ...incomingfile.OrderOption) *IncomingFileQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryInboxItems chains the current query on the "inbox_items" edge.
func (_q *IncomingFileQuery) QueryInboxItems() *InboxItemQuery {
	query := (&InboxItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(incomingfile.Table, incomingfile.FieldID, selector),
			sqlgraph.To(inboxitem.Table, inboxitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incomingfile.InboxItemsTable, incomingfile.InboxItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first IncomingFile entity from the query.
// Returns a *NotFoundError when no IncomingFile was found.
func (_q *IncomingFileQuery) First(ctx context.Context) (*IncomingFile, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{incomingfile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *IncomingFileQuery) FirstX(ctx context.Context) *IncomingFile {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first IncomingFile ID from the query.
// Returns a *NotFoundError when no IncomingFile ID was found.
func (_q *IncomingFileQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{incomingfile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *IncomingFileQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single IncomingFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one IncomingFile entity is found.
// Returns a *NotFoundError when no IncomingFile entities are found.
func (_q *IncomingFileQuery) Only(ctx context.Context) (*IncomingFile, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{incomingfile.Label}
	default:
		return nil, &NotSingularError{incomingfile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *IncomingFileQuery) OnlyX(ctx context.Context) *IncomingFile {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only IncomingFile ID in the query.
// Returns a *NotSingularError when more than one IncomingFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *IncomingFileQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{incomingfile.Label}
	default:
		err = &NotSingularError{incomingfile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *IncomingFileQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of IncomingFiles.
func (_q *IncomingFileQuery) All(ctx context.Context) ([]*IncomingFile, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*IncomingFile, *IncomingFileQuery]()
	return withInterceptors[[]*IncomingFile](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *IncomingFileQuery) AllX(ctx context.Context) []*IncomingFile {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of IncomingFile IDs.
func (_q *IncomingFileQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(incomingfile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *IncomingFileQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *IncomingFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*IncomingFileQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *IncomingFileQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *IncomingFileQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *IncomingFileQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the IncomingFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *IncomingFileQuery) Clone() *IncomingFileQuery {
	if _q == nil {
		return nil
	}
	return &IncomingFileQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]incomingfile.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.IncomingFile{}, _q.predicates...),
		withInboxItems: _q.withInboxItems.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithInboxItems tells the query-builder to eager-load the nodes that are connected to
// the "inbox_items" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *IncomingFileQuery) WithInboxItems(opts ...func(*InboxItemQuery)) *IncomingFileQuery {
	query := (&InboxItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInboxItems = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID uuid.UUID `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.IncomingFile.Query().
//		GroupBy(incomingfile.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *IncomingFileQuery) GroupBy(field string, fields ...string) *IncomingFileGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &IncomingFileGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = incomingfile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID uuid.UUID `json:"user_id,omitempty"`
//	}
//
//	client.IncomingFile.Query().
//		Select(incomingfile.FieldUserID).
//		Scan(ctx, &v)
func (_q *IncomingFileQuery) Select(fields ...string) *IncomingFileSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &IncomingFileSelect{IncomingFileQuery: _q}
	sbuild.label = incomingfile.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a IncomingFileSelect configured with the given aggregations.
func (_q *IncomingFileQuery) Aggregate(fns ...AggregateFunc) *IncomingFileSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *IncomingFileQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !incomingfile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *IncomingFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*IncomingFile, error) {
	var (
		nodes       = []*IncomingFile{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withInboxItems != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*IncomingFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &IncomingFile{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withInboxItems; query != nil {
		if err := _q.loadInboxItems(ctx, query, nodes,
			func(n *IncomingFile) { n.Edges.InboxItems = []*InboxItem{} },
			func(n *IncomingFile, e *InboxItem) { n.Edges.InboxItems = append(n.Edges.InboxItems, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *IncomingFileQuery) loadInboxItems(ctx context.Context, query *InboxItemQuery, nodes []*IncomingFile, init func(*IncomingFile), assign func(*IncomingFile, *InboxItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*IncomingFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(inboxitem.FieldFileID)
	}
	query.Where(predicate.InboxItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(incomingfile.InboxItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *IncomingFileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *IncomingFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(incomingfile.Table, incomingfile.Columns, sqlgraph.NewFieldSpec(incomingfile.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incomingfile.FieldID)
		for i := range fields {
			if fields[i] != incomingfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *IncomingFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(incomingfile.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = incomingfile.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// IncomingFileGroupBy is the group-by builder for IncomingFile entities.
type IncomingFileGroupBy struct {
	selector
	build *IncomingFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *IncomingFileGroupBy) Aggregate(fns ...AggregateFunc) *IncomingFileGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *IncomingFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IncomingFileQuery, *IncomingFileGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *IncomingFileGroupBy) sqlScan(ctx context.Context, root *IncomingFileQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// IncomingFileSelect is the builder for selecting fields of IncomingFile entities.
type IncomingFileSelect struct {
	*IncomingFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *IncomingFileSelect) Aggregate(fns ...AggregateFunc) *IncomingFileSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *IncomingFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IncomingFileQuery, *IncomingFileSelect](ctx, _s.IncomingFileQuery, _s, _s.inters, v)
}

func (_s *IncomingFileSelect) sqlScan(ctx context.Context, root *IncomingFileQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
