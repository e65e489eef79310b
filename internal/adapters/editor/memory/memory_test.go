package memory_test

import (
	"context"
	"sync"
	"testing"

	"paste-upload/internal/adapters/editor/memory"
	"paste-upload/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Create(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		//Arrange
		store := memory.NewStore()

		//Act
		id, err := store.Create("doc-1")

		//Assert
		require.NoError(t, err)
		assert.Equal(t, "doc-1", id)
	})

	t.Run("blank id gets generated", func(t *testing.T) {
		//Arrange
		store := memory.NewStore()

		//Act
		id, err := store.Create("")

		//Assert
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		_, err = store.Editor(id)
		assert.NoError(t, err)
	})

	t.Run("duplicate id", func(t *testing.T) {
		//Arrange
		store := memory.NewStore()
		_, err := store.Create("doc-1")
		require.NoError(t, err)

		//Act
		_, err = store.Create("doc-1")

		//Assert
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestStore_Editor_NotFound(t *testing.T) {

	//Arrange
	store := memory.NewStore()

	//Act
	_, err := store.Editor("ghost")

	//Assert
	require.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestEditor_InsertAtSelection(t *testing.T) {

	t.Run("insert advances the caret", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		store := memory.NewStore()
		_, err := store.Create("doc-1")
		require.NoError(t, err)
		ed, err := store.Editor("doc-1")
		require.NoError(t, err)

		//Act
		require.NoError(t, ed.InsertAtSelection(ctx, "one"))
		require.NoError(t, ed.InsertAtSelection(ctx, "two"))

		//Assert
		text, err := ed.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "onetwo", text)
	})

	t.Run("insert at an explicit selection", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		store := memory.NewStore()
		_, err := store.Create("doc-1")
		require.NoError(t, err)
		ed, err := store.Editor("doc-1")
		require.NoError(t, err)
		require.NoError(t, ed.InsertAtSelection(ctx, "hello world"))
		require.NoError(t, store.SetSelection("doc-1", 5))

		//Act
		require.NoError(t, ed.InsertAtSelection(ctx, ","))

		//Assert
		text, err := ed.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "hello, world", text)
	})

	t.Run("selection is clamped to the text bounds", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		store := memory.NewStore()
		_, err := store.Create("doc-1")
		require.NoError(t, err)
		ed, err := store.Editor("doc-1")
		require.NoError(t, err)
		require.NoError(t, ed.InsertAtSelection(ctx, "abc"))
		require.NoError(t, store.SetSelection("doc-1", 9999))

		//Act
		require.NoError(t, ed.InsertAtSelection(ctx, "!"))

		//Assert
		text, err := ed.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abc!", text)
	})

	t.Run("set selection on unknown document", func(t *testing.T) {
		//Arrange
		store := memory.NewStore()

		//Act
		err := store.SetSelection("ghost", 0)

		//Assert
		require.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})
}

func TestEditor_UpdateText(t *testing.T) {

	t.Run("full buffer read-modify-write", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		store := memory.NewStore()
		_, err := store.Create("doc-1")
		require.NoError(t, err)
		ed, err := store.Editor("doc-1")
		require.NoError(t, err)
		require.NoError(t, ed.InsertAtSelection(ctx, "before MARKER after"))

		//Act
		err = ed.UpdateText(ctx, func(current string) string {
			return "replaced"
		})

		//Assert
		require.NoError(t, err)
		text, err := ed.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "replaced", text)
	})

	t.Run("shrinking text clamps the caret", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		store := memory.NewStore()
		_, err := store.Create("doc-1")
		require.NoError(t, err)
		ed, err := store.Editor("doc-1")
		require.NoError(t, err)
		require.NoError(t, ed.InsertAtSelection(ctx, "a long piece of text"))

		require.NoError(t, ed.UpdateText(ctx, func(string) string { return "ab" }))

		//Act
		require.NoError(t, ed.InsertAtSelection(ctx, "X"))

		//Assert
		text, err := ed.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abX", text)
	})

	t.Run("concurrent updates never interleave", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		store := memory.NewStore()
		_, err := store.Create("doc-1")
		require.NoError(t, err)
		ed, err := store.Editor("doc-1")
		require.NoError(t, err)

		//Act
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = ed.UpdateText(ctx, func(current string) string {
					return current + "x"
				})
			}()
		}
		wg.Wait()

		//Assert
		text, err := ed.Text(ctx)
		require.NoError(t, err)
		assert.Len(t, text, 50)
	})
}
