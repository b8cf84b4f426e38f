package leaderboard

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Brilu-22/tunetiles/internal/storage"
)

func TestInsertKeepsTopFive(t *testing.T) {
	scores := []int{500, 900, 300, 700, 100, 800}

	var board []Entry
	for _, s := range scores {
		board = Insert(board, Entry{Name: "p", Score: s}, DefaultSize)
	}

	want := []int{900, 800, 700, 500, 300}
	if len(board) != len(want) {
		t.Fatalf("len(board) = %d, want %d", len(board), len(want))
	}
	for i, w := range want {
		if board[i].Score != w {
			t.Errorf("board[%d].Score = %d, want %d", i, board[i].Score, w)
		}
	}
}

func TestInsertTiesKeepArrivalOrder(t *testing.T) {
	board := Insert(nil, Entry{Name: "first", Score: 700}, DefaultSize)
	board = Insert(board, Entry{Name: "second", Score: 700}, DefaultSize)
	board = Insert(board, Entry{Name: "third", Score: 900}, DefaultSize)

	wantNames := []string{"third", "first", "second"}
	for i, w := range wantNames {
		if board[i].Name != w {
			t.Errorf("board[%d].Name = %q, want %q", i, board[i].Name, w)
		}
	}
}

func TestInsertDoesNotMutateInput(t *testing.T) {
	original := []Entry{{Name: "a", Score: 100}}
	Insert(original, Entry{Name: "b", Score: 200}, DefaultSize)

	if len(original) != 1 || original[0].Name != "a" {
		t.Errorf("input board mutated: %+v", original)
	}
}

func TestStoreRoundtrip(t *testing.T) {
	store := testStore(t)

	board := []Entry{
		{Name: "alice", Score: 1800, Special: true},
		{Name: "bob", Score: 950},
	}
	if err := store.Save("rock", board); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got := store.Load("rock")
	if len(got) != 2 {
		t.Fatalf("Load() returned %d entries, want 2", len(got))
	}
	if got[0] != board[0] || got[1] != board[1] {
		t.Errorf("Load() = %+v, want %+v", got, board)
	}
}

func TestStoreLoadMissingIsEmpty(t *testing.T) {
	store := testStore(t)

	if board := store.Load("rock"); len(board) != 0 {
		t.Errorf("Load() on empty store = %+v, want empty", board)
	}
}

func TestStoreLoadMalformedIsEmpty(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set("leaderboard_rock", "{definitely not json"); err != nil {
		t.Fatal(err)
	}
	store := NewStore(kv, log.New(io.Discard))

	if board := store.Load("rock"); len(board) != 0 {
		t.Errorf("Load() on malformed data = %+v, want empty", board)
	}
}

func TestStoreBoardsArePerCategory(t *testing.T) {
	store := testStore(t)

	if err := store.Save("rock", []Entry{{Name: "a", Score: 100}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("pop", []Entry{{Name: "b", Score: 200}}); err != nil {
		t.Fatal(err)
	}

	if board := store.Load("rock"); len(board) != 1 || board[0].Name != "a" {
		t.Errorf("Load(rock) = %+v", board)
	}
	if board := store.Load("pop"); len(board) != 1 || board[0].Name != "b" {
		t.Errorf("Load(pop) = %+v", board)
	}
}

func TestLastPlayerName(t *testing.T) {
	store := testStore(t)

	if name := store.LastPlayerName(); name != "" {
		t.Errorf("LastPlayerName() on empty store = %q, want empty", name)
	}

	if err := store.SetLastPlayerName("  carol "); err != nil {
		t.Fatalf("SetLastPlayerName() error = %v", err)
	}
	if name := store.LastPlayerName(); name != "carol" {
		t.Errorf("LastPlayerName() = %q, want %q", name, "carol")
	}
}

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.NewMemory(), log.New(io.Discard))
}
