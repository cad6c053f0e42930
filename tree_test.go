package morse_tree

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Number of nodes in a tree holding the default alphabet: the root, every
// assigned node, and the unassigned ..--, ---. and ---- on the way to digits.
const defaultTreeNodes = 40

func newDefaultTree(t testing.TB) *Tree {
	t.Helper()

	tr, err := NewDefaultTree(context.Background())
	if err != nil {
		t.Fatalf("NewDefaultTree failed: %v", err)
	}

	return tr
}

func TestTree_Insert_Decode(t *testing.T) {
	ctx := context.Background()
	tr := NewTree()

	if tr.GetNodesCount() != 1 || Init().GetNodesCount() != 1 {
		t.Fatalf("expected a single root node got %d", tr.GetNodesCount())
	}

	res, err := tr.Insert(ctx, ".-", 'A')
	if err != nil || res != Ok {
		t.Fatalf("Insert failed: res=%v err=%v", res, err)
	}

	if tr.GetNodesCount() != 3 {
		t.Fatalf("expected 3 nodes got %d", tr.GetNodesCount())
	}

	res, ch, err := tr.DecodeLetter(ctx, ".-")
	if err != nil || res != Match || ch != 'A' {
		t.Fatalf("DecodeLetter failed: res=%v ch=%q err=%v", res, ch, err)
	}

	// intermediate node exists but carries no character
	res, _, err = tr.DecodeLetter(ctx, ".")
	if !errors.Is(err, ErrCodeNotFound) || res != NoMatch {
		t.Fatalf("expected NoMatch for unassigned node, got res=%v err=%v", res, err)
	}

	// path does not exist
	res, _, err = tr.DecodeLetter(ctx, "-")
	if !errors.Is(err, ErrCodeNotFound) || res != NoMatch {
		t.Fatalf("expected NoMatch for missing path, got res=%v err=%v", res, err)
	}

	// empty code resolves to the unassigned root
	res, _, err = tr.DecodeLetter(ctx, "")
	if !errors.Is(err, ErrCodeNotFound) || res != NoMatch {
		t.Fatalf("expected NoMatch for empty code, got res=%v err=%v", res, err)
	}

	// overwriting keeps the node count and reports Dup
	res, err = tr.Insert(ctx, ".-", 'Z')
	if err != nil || res != Dup {
		t.Fatalf("expected Dup on re-insert, got res=%v err=%v", res, err)
	}

	_, ch, _ = tr.DecodeLetter(ctx, ".-")
	if ch != 'Z' {
		t.Fatalf("expected last write to win, got %q", ch)
	}

	if tr.GetNodesCount() != 3 {
		t.Fatalf("expected 3 nodes after overwrite got %d", tr.GetNodesCount())
	}
}

func TestTree_InsertInvalidCode(t *testing.T) {
	ctx := context.Background()
	tr := NewTree()

	res, err := tr.Insert(ctx, ".x-", 'A')
	if !errors.Is(err, ErrInvalidCode) || res != Error {
		t.Fatalf("expected ErrInvalidCode, got res=%v err=%v", res, err)
	}

	if tr.GetNodesCount() != 1 {
		t.Fatalf("rejected insert must not create nodes, got %d", tr.GetNodesCount())
	}
}

func TestTree_DefaultAlphabet(t *testing.T) {
	ctx := context.Background()
	tr := newDefaultTree(t)

	if tr.GetNodesCount() != defaultTreeNodes {
		t.Fatalf("expected %d nodes got %d", defaultTreeNodes, tr.GetNodesCount())
	}

	for _, entry := range DefaultTable() {
		res, ch, err := tr.DecodeLetter(ctx, entry.Code)
		if err != nil || res != Match || ch != entry.Character {
			t.Fatalf("DecodeLetter(%q): expected %q got %q res=%v err=%v", entry.Code, entry.Character, ch, res, err)
		}

		res, code, err := tr.EncodeLetter(ctx, entry.Character)
		if err != nil || res != Match || code != entry.Code {
			t.Fatalf("EncodeLetter(%q): expected %q got %q res=%v err=%v", entry.Character, entry.Code, code, res, err)
		}

		// round trip through both lookups
		_, back, _ := tr.DecodeLetter(ctx, code)
		if back != entry.Character {
			t.Fatalf("round trip of %q produced %q", entry.Character, back)
		}
	}
}

func TestTree_EncodeLetter(t *testing.T) {
	ctx := context.Background()
	tr := newDefaultTree(t)

	res, code, err := tr.EncodeLetter(ctx, 's')
	if err != nil || res != Match || code != "..." {
		t.Fatalf("expected lower case to encode as upper case, got %q res=%v err=%v", code, res, err)
	}

	for _, ch := range []rune{'!', ' ', '/', 'é', 0} {
		res, _, err := tr.EncodeLetter(ctx, ch)
		if !errors.Is(err, ErrInvalidCharacter) || res != Error {
			t.Fatalf("EncodeLetter(%q): expected ErrInvalidCharacter, got res=%v err=%v", ch, res, err)
		}
	}

	partial := NewTree()
	_, _ = partial.Insert(ctx, ".", 'E')
	res, _, err = partial.EncodeLetter(ctx, 'T')
	if !errors.Is(err, ErrCharacterNotFound) || res != NoMatch {
		t.Fatalf("expected NoMatch for a character outside the tree, got res=%v err=%v", res, err)
	}
}

func TestTree_EncodeLetterBreadthFirst(t *testing.T) {
	ctx := context.Background()
	tr := NewTree()

	// the same character at two depths: the shallower one wins
	_, _ = tr.Insert(ctx, "--.", 'X')
	_, _ = tr.Insert(ctx, ".-", 'X')

	_, code, err := tr.EncodeLetter(ctx, 'X')
	if err != nil || code != ".-" {
		t.Fatalf("expected the shallowest code .-, got %q err=%v", code, err)
	}

	// same depth: dots are searched before dashes
	_, _ = tr.Insert(ctx, "-.", 'Y')
	_, _ = tr.Insert(ctx, ".-.", 'Y')
	_, _ = tr.Insert(ctx, "..", 'Y')

	_, code, _ = tr.EncodeLetter(ctx, 'Y')
	if code != ".." {
		t.Fatalf("expected .. to be found first, got %q", code)
	}
}

func TestTree_Walk(t *testing.T) {
	ctx := context.Background()
	tr := newDefaultTree(t)

	entries, err := tr.Dictionary(ctx)
	if err != nil {
		t.Fatalf("Dictionary failed: %v", err)
	}

	got := make([]rune, 0, len(entries))
	for _, entry := range entries {
		got = append(got, entry.Character)

		_, code, _ := tr.EncodeLetter(ctx, entry.Character)
		if code != entry.Code {
			t.Fatalf("walk reported %q for %q, expected %q", entry.Code, entry.Character, code)
		}
	}

	want := []rune("EISH54V3UF2ARLWPJ1TNDB6XKCYMGZ7QO890")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected walk order (-want +got):\n%s", diff)
	}
}

func TestTree_WalkErrors(t *testing.T) {
	ctx := context.Background()
	tr := newDefaultTree(t)

	if err := tr.Walk(ctx, nil); !errors.Is(err, ErrNoWalkerFunction) {
		t.Fatalf("expected ErrNoWalkerFunction, got %v", err)
	}

	stop := errors.New("stop")
	visited := 0
	err := tr.Walk(ctx, func(_ context.Context, _ Entry) error {
		visited++
		if visited == 3 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || visited != 3 {
		t.Fatalf("expected walk to stop after 3 entries, got %d err=%v", visited, err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := tr.Walk(cancelled, func(context.Context, Entry) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTree_Destroy(t *testing.T) {
	ctx := context.Background()
	tr := newDefaultTree(t)

	root := tr.root
	left := root.left

	tr.Destroy(ctx)

	if tr.GetNodesCount() != 0 {
		t.Fatalf("expected every node to be released, %d remain", tr.GetNodesCount())
	}

	if root.left != nil || root.right != nil || left.left != nil || left.isTerminal() {
		t.Fatalf("released nodes must not keep references to their children")
	}

	if res, _, err := tr.DecodeLetter(ctx, "."); !errors.Is(err, ErrInvalidMorseTree) || res != Error {
		t.Fatalf("expected ErrInvalidMorseTree after destroy, got res=%v err=%v", res, err)
	}

	if res, err := tr.Insert(ctx, ".", 'E'); !errors.Is(err, ErrInvalidMorseTree) || res != Error {
		t.Fatalf("expected insert on destroyed tree to fail, got res=%v err=%v", res, err)
	}

	if err := tr.Walk(ctx, func(context.Context, Entry) error { return nil }); !errors.Is(err, ErrInvalidMorseTree) {
		t.Fatalf("expected walk on destroyed tree to fail, got %v", err)
	}

	// a second destroy is a no-op
	tr.Destroy(ctx)
	if tr.GetNodesCount() != 0 {
		t.Fatalf("expected no nodes after second destroy, got %d", tr.GetNodesCount())
	}

	var nilTree *Tree
	nilTree.Destroy(ctx)
	if res, _, err := nilTree.EncodeLetter(ctx, 'A'); !errors.Is(err, ErrInvalidMorseTree) || res != Error {
		t.Fatalf("expected ErrInvalidMorseTree on nil tree, got res=%v err=%v", res, err)
	}
}

func TestTree_Populate(t *testing.T) {
	ctx := context.Background()
	tr := NewTree()

	err := tr.Populate(ctx, []Entry{{'E', "."}, {'?', "..?"}, {'T', "-"}})
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected populate to stop on invalid code, got %v", err)
	}

	if _, _, err := tr.DecodeLetter(ctx, "-"); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("entries after the failing one must not be inserted")
	}
}

func TestTree_LockingHandlers(t *testing.T) {
	ctx := context.Background()
	// Very small test to ensure lock handlers are called
	called := struct{ r, ru, w, u int }{}

	rlock := func(_ context.Context) { called.r++ }
	runlock := func(_ context.Context) { called.ru++ }
	wlock := func(_ context.Context) { called.w++ }
	unlock := func(_ context.Context) { called.u++ }

	tr := NewTreeWithLockHandlers(rlock, runlock, wlock, unlock)

	// Insert should call write lock/unlock
	_, _ = tr.Insert(ctx, "...", 'S')
	if called.w == 0 || called.u == 0 {
		t.Fatalf("expected write lock/unlock called, got w=%d u=%d", called.w, called.u)
	}

	// DecodeLetter should call read lock/unlock
	_, _, _ = tr.DecodeLetter(ctx, "...")
	if called.r == 0 || called.ru == 0 {
		t.Fatalf("expected read lock/unlock called, got r=%d ru=%d", called.r, called.ru)
	}

	// EncodeLetter should call read lock/unlock
	_, _, _ = tr.EncodeLetter(ctx, 'S')
	if called.r < 2 || called.ru < 2 {
		t.Fatalf("expected read lock/unlock called twice, got r=%d ru=%d", called.r, called.ru)
	}

	// Codec calls lock once per message
	codec := NewCodec(tr)
	_, _ = codec.Decode(ctx, "... ... ...")
	if called.r != 3 || called.ru != 3 {
		t.Fatalf("expected read lock/unlock called three times, got r=%d ru=%d", called.r, called.ru)
	}

	// Destroy should call write lock/unlock
	tr.Destroy(ctx)
	if called.w < 2 || called.u < 2 {
		t.Fatalf("expected write lock/unlock called twice, got w=%d u=%d", called.w, called.u)
	}
}

func TestTree_ConcurrentReaders(t *testing.T) {
	ctx := context.Background()

	var mu sync.RWMutex
	tr := NewTreeWithLockHandlers(
		func(context.Context) { mu.RLock() },
		func(context.Context) { mu.RUnlock() },
		func(context.Context) { mu.Lock() },
		func(context.Context) { mu.Unlock() },
	)
	if err := tr.Populate(ctx, DefaultTable()); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	codec := NewCodec(tr)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				text, err := codec.Decode(ctx, "... --- ... / ... --- ...")
				if err != nil {
					errs <- err
					return
				}
				if text != "SOS SOS" {
					errs <- errors.New("unexpected decode " + text)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent decode failed: %v", err)
	}
}
