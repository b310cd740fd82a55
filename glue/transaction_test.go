package glue_test

import (
	"testing"

	"github.com/delaneyj/gluekit/glue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder[T any] struct {
	values []T
}

func (r *recorder[T]) sink(v T) {
	r.values = append(r.values, v)
}

func (r *recorder[T]) take() []T {
	v := r.values
	r.values = nil
	return v
}

func kinds[C any](updates []glue.Update[C]) []glue.UpdateKind {
	out := make([]glue.UpdateKind, len(updates))
	for i, u := range updates {
		out[i] = u.Kind
	}
	return out
}

func TestSubscribingToChangesSubscribesToUpdates(t *testing.T) {
	o := glue.NewTestObservable(0)
	changes := o.Changes()
	assert.False(t, o.IsConnected())

	rec := &recorder[glue.TestChange]{}
	c := changes.Connect(rec.sink)
	assert.True(t, o.IsConnected())

	c.Disconnect()
	assert.False(t, o.IsConnected())
}

func TestChangesSendsCompletedChanges(t *testing.T) {
	o := glue.NewTestObservable(0)
	rec := &recorder[glue.TestChange]{}
	c := o.Changes().Connect(rec.sink)
	defer c.Disconnect()

	o.Begin()
	o.SetValue(1)
	o.SetValue(2)
	assert.Empty(t, rec.take())

	o.End()
	assert.Equal(t, []glue.TestChange{glue.NewTestChange(0, 1, 2)}, rec.take())
}

func TestRemovingASinkDuringATransactionSendsPartialChanges(t *testing.T) {
	o := glue.NewTestObservable(0)
	rec := &recorder[glue.TestChange]{}
	c := o.Changes().Connect(rec.sink)

	o.Begin()
	o.SetValue(1)
	o.SetValue(2)
	c.Disconnect()
	assert.Equal(t, []glue.TestChange{glue.NewTestChange(0, 1, 2)}, rec.take())

	o.SetValue(3)
	o.End()
	assert.Empty(t, rec.take())
}

func TestDifferentSinksMayReceiveDifferentChanges(t *testing.T) {
	o := glue.NewTestObservable(0)
	changes := o.Changes()

	rec1 := &recorder[glue.TestChange]{}
	c1 := changes.Connect(rec1.sink)

	o.Begin()
	o.SetValue(1)

	rec2 := &recorder[glue.TestChange]{}
	c2 := changes.Connect(rec2.sink)
	o.SetValue(2)

	c1.Disconnect()
	assert.Equal(t, []glue.TestChange{glue.NewTestChange(0, 1, 2)}, rec1.take())

	o.SetValue(3)
	o.End()
	assert.Equal(t, []glue.TestChange{glue.NewTestChange(1, 2, 3)}, rec2.take())

	c2.Disconnect()
}

func TestOnlyOutermostTransactionIsForwarded(t *testing.T) {
	o := glue.NewTestObservable(0)
	rec := &recorder[glue.Update[glue.TestChange]]{}
	c := o.Updates().Connect(rec.sink)
	defer c.Disconnect()

	o.Begin()
	o.Begin()
	o.SetValue(1)
	o.End()
	assert.True(t, o.IsInTransaction())
	o.SetValue(2)
	o.End()
	assert.False(t, o.IsInTransaction())

	assert.Equal(t, []glue.UpdateKind{
		glue.BeginTransaction,
		glue.Changed,
		glue.Changed,
		glue.EndTransaction,
	}, kinds(rec.take()))
}

func TestLateSinkGetsBeginAndEarlyLeaverGetsEnd(t *testing.T) {
	o := glue.NewTestObservable(0)
	keep := o.Updates().Connect(func(glue.Update[glue.TestChange]) {})
	defer keep.Disconnect()

	o.Begin()

	rec := &recorder[glue.Update[glue.TestChange]]{}
	c := o.Updates().Connect(rec.sink)
	assert.Equal(t, []glue.UpdateKind{glue.BeginTransaction}, kinds(rec.take()))

	o.SetValue(1)
	c.Disconnect()
	assert.Equal(t, []glue.UpdateKind{glue.Changed, glue.EndTransaction}, kinds(rec.take()))

	o.End()
	assert.Empty(t, rec.take())
}

func TestUnbalancedEndPanics(t *testing.T) {
	o := glue.NewTestObservable(0)
	assert.Panics(t, o.End)

	o.Begin()
	o.End()
	assert.Panics(t, o.End)
}

func TestSubscribe(t *testing.T) {
	v := glue.NewVariable("a")
	var got []glue.ValueChange[string]
	c := glue.Subscribe(v.Updates(), func(ch glue.ValueChange[string]) {
		got = append(got, ch)
	})
	require.True(t, v.IsObserved())

	v.SetValue("b")
	v.WithTransaction(func() {
		v.SetValue("c")
		v.SetValue("d")
	})
	c.Disconnect()
	v.SetValue("e")

	assert.Equal(t, []glue.ValueChange[string]{
		{Old: "a", New: "b"},
		{Old: "b", New: "d"},
	}, got)
	assert.False(t, v.IsObserved())
}

func TestUpdateKindString(t *testing.T) {
	assert.Equal(t, "beginTransaction", glue.BeginTransaction.String())
	assert.Equal(t, "change", glue.Changed.String())
	assert.Equal(t, "endTransaction", glue.EndTransaction.String())
}
