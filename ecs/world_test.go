package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/calafrios/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"destroy_middle", 3, 1},
		{"no_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := CreateEntity(w)
				if !e.Valid() {
					t.Fatalf("created entity %v is not valid", e)
				}
				ents = append(ents, e)
			}
			want := c.create
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity returned false for a live entity")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity returned true twice")
				}
				want--
			}
			if got := len(Entities(w)); got != want {
				t.Fatalf("expected %d live entities, got %d", want, got)
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.slot() != old.slot() {
		t.Fatalf("expected slot %d to be reused, got %d", old.slot(), reused.slot())
	}
	if reused == old {
		t.Fatalf("reused handle must differ by epoch")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, reused, kind) {
		t.Fatalf("reused entity inherited a component from its predecessor")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name:  "replace_int",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(11)) },
			check: func(t *testing.T) {
				if err := Add(w, e1, ints.Kind(), intPtr(12)); err != nil {
					t.Fatal(err)
				}
				v, _ := Get(w, e1, ints.Kind())
				if *v != 12 {
					t.Fatalf("expected replaced value 12, got %d", *v)
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name: "strings_on_both",
			setup: func() error {
				if err := Add(w, e1, strs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have a string")
				}
				if _, v, ok := Single(w, strs.Kind()); !ok || (*v != "a" && *v != "b") {
					t.Fatalf("Single returned %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, strs.Kind()) },
		},
		{
			name:  "single_after_removal",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				e, v, ok := Single(w, strs.Kind())
				if !ok || e != e2 || *v != "b" {
					t.Fatalf("expected e2=b, got %v %v %v", e, v, ok)
				}
				if first, ok := First(w, strs.Kind()); !ok || first != e2 {
					t.Fatalf("expected First to return e2, got %v", first)
				}
			},
			teardown: func() bool { return DestroyEntity(w, e2) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if _, ok := First(w, strs.Kind()); ok {
		t.Fatalf("destroyed entity still listed in its stores")
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	for _, e := range []Entity{e1, e3} {
		if err := Add(w, e, h.Kind(), intPtr(int(e.slot()))); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if n := len(Entities(w)); n != 0 {
		t.Fatalf("expected all entities destroyed, %d left", n)
	}
}

func TestForEachN(t *testing.T) {
	tests := []struct {
		name string
		// has[i] lists the kinds (0..3) entity i carries.
		has   [][]int
		want3 []int
		want4 []int
	}{
		{
			name:  "intersection",
			has:   [][]int{{0}, {0, 1, 2, 3}, {1}, {2}, {0, 1, 2}},
			want3: []int{1, 4},
			want4: []int{1},
		},
		{
			name:  "no_common",
			has:   [][]int{{0}, {1}},
			want3: nil,
			want4: nil,
		},
		{
			name:  "missing_store",
			has:   [][]int{{0, 1}},
			want3: nil,
			want4: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			kinds := []component.ComponentKind[int]{
				component.NewComponentKind[int](),
				component.NewComponentKind[int](),
				component.NewComponentKind[int](),
				component.NewComponentKind[int](),
			}
			ents := make([]Entity, len(tc.has))
			for i, ks := range tc.has {
				ents[i] = CreateEntity(w)
				for _, k := range ks {
					if err := Add(w, ents[i], kinds[k], intPtr(k)); err != nil {
						t.Fatal(err)
					}
				}
			}

			var got3, got4 []Entity
			ForEach3(w, kinds[0], kinds[1], kinds[2], func(e Entity, _ *int, _ *int, _ *int) { got3 = append(got3, e) })
			ForEach4(w, kinds[0], kinds[1], kinds[2], kinds[3], func(e Entity, _ *int, _ *int, _ *int, _ *int) { got4 = append(got4, e) })

			check := func(label string, got []Entity, want []int) {
				if len(got) != len(want) {
					t.Fatalf("%s: expected %d matches, got %v", label, len(want), got)
				}
				set := toSet(got)
				for _, i := range want {
					if _, ok := set[ents[i]]; !ok {
						t.Fatalf("%s: expected entity %d in result %v", label, i, got)
					}
				}
			}
			check("ForEach3", got3, tc.want3)
			check("ForEach4", got4, tc.want4)
		})
	}
}

func TestEntityHandleFormat(t *testing.T) {
	cases := []struct {
		e    Entity
		want string
	}{
		{NoEntity, "none"},
		{packEntity(1, 0), "1#0"},
		{packEntity(7, 3), "7#3"},
	}
	for _, c := range cases {
		if got := c.e.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
	if NoEntity.Valid() {
		t.Fatalf("NoEntity must not be valid")
	}
	if e := packEntity(2, 9); e.slot() != 2 || e.epoch() != 9 {
		t.Fatalf("round trip: slot %d epoch %d", e.slot(), e.epoch())
	}
}
