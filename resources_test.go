package entitycs

import (
	"testing"
)

func TestResources(t *testing.T) {
	type testStruct1 struct{ v int }
	type testStruct2 struct{}

	t.Run("Add and Get", func(t *testing.T) {
		r := &Resources{}
		res1 := &testStruct1{v: 3}
		AddResource(r, res1)
		got, ok := GetResource[*testStruct1](r)
		if !ok || got != res1 {
			t.Errorf("expected %v, got %v", res1, got)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		r := &Resources{}
		got, ok := GetResource[*testStruct1](r)
		if ok || got != nil {
			t.Errorf("expected nothing, got %v", got)
		}
	})

	t.Run("Add same type panics", func(t *testing.T) {
		r := &Resources{}
		AddResource(r, &testStruct1{})
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		AddResource(r, &testStruct1{})
	})

	t.Run("Value and pointer are distinct", func(t *testing.T) {
		r := &Resources{}
		AddResource(r, testStruct1{v: 1})
		AddResource(r, &testStruct1{v: 2})
		if r.Len() != 2 {
			t.Errorf("expected 2 resources, got %d", r.Len())
		}
		if v := MustGetResource[testStruct1](r); v.v != 1 {
			t.Errorf("expected 1, got %d", v.v)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		r := &Resources{}
		AddResource(r, &testStruct2{})
		RemoveResource[*testStruct2](r)
		if _, ok := GetResource[*testStruct2](r); ok {
			t.Error("expected resource removed")
		}
		AddResource(r, &testStruct2{})
		if r.Len() != 1 {
			t.Errorf("expected 1 resource after re-add, got %d", r.Len())
		}
	})

	t.Run("MustGet panics", func(t *testing.T) {
		r := &Resources{}
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		MustGetResource[*testStruct2](r)
	})

	t.Run("Clear", func(t *testing.T) {
		r := &Resources{}
		AddResource(r, &testStruct1{})
		AddResource(r, &testStruct2{})
		r.Clear()
		if r.Len() != 0 {
			t.Errorf("expected empty, got %d", r.Len())
		}
	})
}
