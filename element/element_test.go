// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package element

import "testing"

func TestAppendSetsParentAndOrder(t *testing.T) {
	root := New("root")
	a := New("a")
	b := New("b")
	c := New("c")
	root.Append(a, b, c)

	kids := root.Children()
	if len(kids) != 3 {
		t.Fatalf("expected 3 children, got %d", len(kids))
	}
	for i, want := range []*Node{a, b, c} {
		if kids[i] != want {
			t.Fatalf("child %d out of order", i)
		}
		if want.Parent() != root {
			t.Fatalf("child %d has wrong parent", i)
		}
	}
}

func TestAppendReparents(t *testing.T) {
	first := New("first")
	second := New("second")
	child := New("child")

	first.Append(child)
	second.Append(child)

	if child.Parent() != second {
		t.Fatalf("expected child to move to second parent")
	}
	if len(first.Children()) != 0 {
		t.Fatalf("expected child removed from first parent, got %d children", len(first.Children()))
	}
}

func TestSiblingQueries(t *testing.T) {
	root := New()
	a, b, c := New("a"), New("b"), New("c")
	root.Append(a, b, c)

	tests := []struct {
		name string
		node *Node
		prev *Node
		next *Node
	}{
		{"first", a, nil, b},
		{"middle", b, a, c},
		{"last", c, b, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.PrevSibling(); got != tt.prev {
				t.Errorf("PrevSibling = %v, want %v", got, tt.prev)
			}
			if got := tt.node.NextSibling(); got != tt.next {
				t.Errorf("NextSibling = %v, want %v", got, tt.next)
			}
		})
	}

	detached := New("detached")
	if detached.PrevSibling() != nil || detached.NextSibling() != nil {
		t.Fatalf("detached node should have no siblings")
	}
}

func TestRemove(t *testing.T) {
	root := New()
	a, b := New("a"), New("b")
	root.Append(a, b)

	a.Remove()
	if a.Parent() != nil {
		t.Fatalf("removed node still has a parent")
	}
	if got := len(root.Children()); got != 1 {
		t.Fatalf("expected 1 remaining child, got %d", got)
	}
	if b.PrevSibling() != nil {
		t.Fatalf("remaining child should now be first")
	}

	// Removing a detached node is a no-op.
	a.Remove()
}

func TestFind(t *testing.T) {
	root := New("root")
	inner := New("inner")
	deep := New("deep", "target")
	root.Append(inner)
	inner.Append(deep)

	if got := root.Find("target"); got != deep {
		t.Fatalf("Find(target) = %v, want deep node", got)
	}
	if got := root.Find("root"); got != root {
		t.Fatalf("Find should consider the node itself")
	}
	if got := root.Find("missing"); got != nil {
		t.Fatalf("Find(missing) = %v, want nil", got)
	}
}

func TestClassesAndAttrs(t *testing.T) {
	n := New("one")
	n.AddClass("two")
	n.AddClass("two") // duplicate ignored
	if got := n.Classes(); len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("unexpected classes: %v", got)
	}
	if !n.HasClass("two") || n.HasClass("three") {
		t.Fatalf("HasClass gave wrong answers")
	}

	n.SetAttr("data-index", "4")
	if v, ok := n.Attr("data-index"); !ok || v != "4" {
		t.Fatalf("Attr = %q, %v", v, ok)
	}
	if _, ok := n.Attr("missing"); ok {
		t.Fatalf("missing attribute reported present")
	}
}
