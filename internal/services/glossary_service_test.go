package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"glossary-backend/internal/models"
	"glossary-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateGlossary(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a missing translation set before reaching the store", func(t *testing.T) {
		svc := NewGlossaryService(newMockGlossaryRepository(t), newMockGlossaryEntryRepository(t), nil, nil, nil, nil, newTestLogger(), nil)

		err := svc.CreateGlossary(ctx, &models.Glossary{Description: "orphan"})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "translation_set_id is required")
	})

	t.Run("rejects an unknown translation set", func(t *testing.T) {
		f := newFixture(t, nil)
		err := f.service.CreateGlossary(ctx, &models.Glossary{TranslationSetID: 99})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("allows one glossary per translation set", func(t *testing.T) {
		f := newFixture(t, nil)
		set := f.set(t, f.project(t, "wp", nil), "default", "de")
		f.glossary(t, set)

		err := f.service.CreateGlossary(ctx, &models.Glossary{TranslationSetID: set.ID})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUpdateGlossary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	set := f.set(t, f.project(t, "wp", nil), "default", "de")
	glossary := f.glossary(t, set)

	updated, err := f.service.UpdateGlossary(ctx, glossary.ID, "new description")
	require.NoError(t, err)
	assert.Equal(t, "new description", updated.Description)
	assert.Equal(t, set.ID, updated.TranslationSetID)

	_, err = f.service.UpdateGlossary(ctx, glossary.ID+1, "x")
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestCopyEntries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	project := f.project(t, "wp", nil)
	source := f.glossary(t, f.set(t, project, "default", "de"))
	target := f.glossary(t, f.set(t, project, "default", "fr"))

	f.entry(t, source, "post", "Beitrag")
	f.entry(t, source, "page", "Seite")
	f.entry(t, source, "comment", "Kommentar")

	copied, err := f.service.CopyEntries(ctx, source.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), copied)

	sourceEntries, err := f.service.ListEntries(ctx, source.ID)
	require.NoError(t, err)
	targetEntries, err := f.service.ListEntries(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, targetEntries, 3)

	for i, e := range targetEntries {
		src := sourceEntries[i]
		assert.NotEqual(t, src.ID, e.ID)
		assert.Equal(t, target.ID, e.GlossaryID)
		assert.Equal(t, src.Term, e.Term)
		assert.Equal(t, src.Type, e.Type)
		assert.Equal(t, src.Examples, e.Examples)
		assert.Equal(t, src.Comment, e.Comment)
		assert.Equal(t, src.SuggestedTranslation, e.SuggestedTranslation)
		assert.True(t, fixedNow.Equal(e.LastUpdate))
	}

	t.Run("copying twice duplicates entries", func(t *testing.T) {
		copied, err := f.service.CopyEntries(ctx, source.ID, target.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), copied)

		targetEntries, err := f.service.ListEntries(ctx, target.ID)
		require.NoError(t, err)
		assert.Len(t, targetEntries, 6)
	})

	t.Run("empty source copies nothing", func(t *testing.T) {
		empty := f.glossary(t, f.set(t, project, "formal", "de"))
		copied, err := f.service.CopyEntries(ctx, empty.ID, target.ID)
		require.NoError(t, err)
		assert.Zero(t, copied)
	})

	t.Run("unknown glossaries are reported", func(t *testing.T) {
		_, err := f.service.CopyEntries(ctx, 999, target.ID)
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)
		_, err = f.service.CopyEntries(ctx, source.ID, 999)
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)
	})
}

func TestDeleteGlossary(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the glossary and all its entries", func(t *testing.T) {
		f := newFixture(t, nil)
		project := f.project(t, "wp", nil)
		glossary := f.glossary(t, f.set(t, project, "default", "de"))
		other := f.glossary(t, f.set(t, project, "default", "fr"))
		f.entry(t, glossary, "post", "Beitrag")
		f.entry(t, glossary, "page", "Seite")
		f.entry(t, other, "post", "article")

		require.NoError(t, f.service.DeleteGlossary(ctx, glossary.ID))

		count, err := f.entries.CountByGlossaryID(ctx, glossary.ID)
		require.NoError(t, err)
		assert.Zero(t, count)

		_, err = f.glossaries.FindByID(ctx, glossary.ID)
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)

		count, err = f.entries.CountByGlossaryID(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("deleting twice fails", func(t *testing.T) {
		f := newFixture(t, nil)
		glossary := f.glossary(t, f.set(t, f.project(t, "wp", nil), "default", "de"))

		require.NoError(t, f.service.DeleteGlossary(ctx, glossary.ID))
		assert.ErrorIs(t, f.service.DeleteGlossary(ctx, glossary.ID), repository.ErrRecordNotFound)
	})

	t.Run("entry deletion failures are surfaced", func(t *testing.T) {
		boom := errors.New("disk full")
		glossary := &models.Glossary{ID: 5, TranslationSetID: 1}

		glossaries := newMockGlossaryRepository(t)
		glossaries.On("FindByID", mock.Anything, uint(5)).Return(glossary, nil)
		glossaries.On("Transaction", mock.Anything).Return()
		entries := newMockGlossaryEntryRepository(t)
		entries.On("DeleteByGlossaryID", mock.Anything, mock.Anything, uint(5)).Return(int64(0), boom)

		svc := NewGlossaryService(glossaries, entries, nil, nil, nil, nil, newTestLogger(), nil)
		err := svc.DeleteGlossary(ctx, 5)
		assert.ErrorIs(t, err, boom)
		glossaries.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("glossary delete failure rolls back entry removal", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.entries.Create(ctx, &models.GlossaryEntry{GlossaryID: 777, Term: "stray", LastUpdate: fixedNow}))

		_, err := DeleteGlossaryCascade(ctx, f.glossaries, f.entries, &models.Glossary{ID: 777})
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)

		count, err := f.entries.CountByGlossaryID(ctx, 777)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestResolveForTranslationSet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	root := f.project(t, "wp", nil)
	child := f.project(t, "dev", root)
	rootGlossary := f.glossary(t, f.set(t, root, "default", "de"))
	childSet := f.set(t, child, "default", "de")

	resolved, err := f.service.ResolveForTranslationSet(ctx, childSet.ID)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, rootGlossary.ID, resolved.Glossary.ID)
	assert.True(t, resolved.Inherited)

	frSet := f.set(t, child, "default", "fr")
	resolved, err = f.service.ResolveForTranslationSet(ctx, frSet.ID)
	require.NoError(t, err)
	assert.Nil(t, resolved)

	_, err = f.service.ResolveForTranslationSet(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestEntries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	glossary := f.glossary(t, f.set(t, f.project(t, "wp", nil), "default", "de"))

	t.Run("add stamps ownership and time", func(t *testing.T) {
		entry := f.entry(t, glossary, "post", "Beitrag")
		assert.Equal(t, glossary.ID, entry.GlossaryID)
		assert.Equal(t, fixedNow, entry.LastUpdate)
	})

	t.Run("add validates the entry", func(t *testing.T) {
		err := f.service.AddEntry(ctx, glossary.ID, &models.GlossaryEntry{Term: "x", Type: "gerund"})
		assert.ErrorIs(t, err, ErrValidation)

		err = f.service.AddEntry(ctx, glossary.ID, &models.GlossaryEntry{Type: "noun"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("add to unknown glossary", func(t *testing.T) {
		err := f.service.AddEntry(ctx, 999, &models.GlossaryEntry{Term: "x"})
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)
	})

	t.Run("list is ordered by term and delete is scoped", func(t *testing.T) {
		f.entry(t, glossary, "attachment", "Anhang")
		entries, err := f.service.ListEntries(ctx, glossary.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "attachment", entries[0].Term)

		assert.ErrorIs(t, f.service.DeleteEntry(ctx, glossary.ID+1, entries[0].ID), repository.ErrRecordNotFound)
		require.NoError(t, f.service.DeleteEntry(ctx, glossary.ID, entries[0].ID))
	})
}

func TestExportGlossary(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads csv and returns a presigned url", func(t *testing.T) {
		storage := newMockExportStorage(t)
		f := newFixture(t, storage)
		glossary := f.glossary(t, f.set(t, f.project(t, "wp", nil), "default", "de"))
		f.entry(t, glossary, "post", "Beitrag")

		storage.On("PutObject", mock.Anything, mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "glossaries/1/") && strings.HasSuffix(name, ".csv")
		}), "text/csv", []byte("en,de,pos,description\npost,Beitrag,noun,c-post\n")).Return(nil)
		storage.On("PresignedGetURL", mock.Anything, mock.Anything, "glossary-de-default.csv").Return("https://minio.local/signed", nil)

		export, err := f.service.ExportGlossary(ctx, glossary.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://minio.local/signed", export.URL)
		assert.Equal(t, 1, export.Entries)
	})

	t.Run("upload failure is returned", func(t *testing.T) {
		storage := newMockExportStorage(t)
		f := newFixture(t, storage)
		glossary := f.glossary(t, f.set(t, f.project(t, "wp", nil), "default", "de"))

		boom := errors.New("bucket gone")
		storage.On("PutObject", mock.Anything, mock.Anything, "text/csv", mock.Anything).Return(boom)

		_, err := f.service.ExportGlossary(ctx, glossary.ID)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no storage configured", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.service.ExportGlossary(ctx, 1)
		assert.Error(t, err)
	})
}

func TestRenderGlossaryCSV(t *testing.T) {
	data, err := RenderGlossaryCSV("fr", []models.GlossaryEntry{
		{Term: "post", SuggestedTranslation: "article", Type: "noun", Comment: "blog post, not mail"},
	})
	require.NoError(t, err)
	assert.Equal(t, "en,fr,pos,description\npost,article,noun,\"blog post, not mail\"\n", string(data))
}
