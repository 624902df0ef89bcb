package Trees

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestPrint(t *testing.T) {
	var sb strings.Builder
	b := NewBSTree[int](false)
	b.InsertAll([]int{2, 1, 3})
	b.Print(&sb)
	want := "       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"
	if sb.String() != want {
		t.Errorf("got\n%s\nwant\n%s", sb.String(), want)
	}

	sb.Reset()
	a := NewAVLTree[int](false)
	a.InsertAll([]int{1, 2, 3})
	a.Print(&sb)
	if !strings.Contains(sb.String(), "|------+ 2 h=1\n") {
		t.Errorf("AVL root line missing in\n%s", sb.String())
	}

	sb.Reset()
	r := NewRBTree[int](false)
	r.InsertAll([]int{1, 2})
	r.Print(&sb)
	if want := "       /------+ 2 R\n|------+ 1 B\n"; sb.String() != want {
		t.Errorf("got\n%s\nwant\n%s", sb.String(), want)
	}

	sb.Reset()
	k := NewRankTree[int, uint8](false)
	k.InsertAll([]int{5, 3, 4})
	k.Print(&sb)
	if !strings.Contains(sb.String(), "|------+ 5 #3\n") || !strings.Contains(sb.String(), "/------+ 4 #1\n") {
		t.Errorf("rank tree sizes missing in\n%s", sb.String())
	}
}

func TestErrorClasses(t *testing.T) {
	for _, c := range []struct {
		e                               error
		empty, exists, invalid, missing bool
	}{
		{ErrEmptyTree, true, false, false, false},
		{ErrDuplicate, false, true, false, false},
		{ErrInvalidArgument, false, false, true, false},
		{ErrOutOfRange, false, false, true, false},
		{ErrInvalidDegree, false, false, true, false},
		{ErrNotFound, false, false, false, true},
		{ErrNoNeighbour, false, false, false, true},
		{errors.New("other"), false, false, false, false},
	} {
		for _, e := range []error{c.e, errors.Wrap(c.e, "context"), fmt.Errorf("ctx: %w", c.e)} {
			if IsErrEmpty(e) != c.empty || IsErrExists(e) != c.exists || IsErrInvalid(e) != c.invalid || IsErrNotFound(e) != c.missing {
				t.Errorf("%v is classified wrongly", e)
			}
		}
	}
	if GenericError("x").Error() != "x" {
		t.Errorf("GenericError doesn't print its text")
	}
}
