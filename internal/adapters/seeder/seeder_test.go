package seeder_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axcelcuno/tienda/internal/adapters/seeder"
	"github.com/axcelcuno/tienda/internal/domain"
)

type fakeProductRepo struct {
	existing map[string]bool
	created  []domain.Product
	failFor  string
}

func (r *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	if p.Name == r.failFor {
		return errors.New("fila rechazada")
	}
	r.created = append(r.created, *p)
	return nil
}

func (r *fakeProductRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	return r.existing[name], nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	return r.created, nil
}

const landingPage = `<!DOCTYPE html>
<html><body>
<section>
	<article class="productos">
		<header class="producto">Taza
			Clasica</header>
		<img src="../assets/taza.png" alt="taza">
	</article>
	<article class="productos">
		<header class="producto">Remera Logo</header>
		<img src="../assets/remera.png" alt="remera">
	</article>
	<article class="productos">
		<header class="producto">Gorra</header>
	</article>
	<article class="otros">
		<header class="producto">No es producto</header>
	</article>
</section>
</body></html>`

func writeFrontend(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "html"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "html", "inicio.html"), []byte(landingPage), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "taza.png"), []byte{0x89, 0x50, 0x4e, 0x47}, 0o644))
	return dir
}

func TestImportFromHTML(t *testing.T) {
	t.Run("InsertsCards", func(t *testing.T) {
		repo := &fakeProductRepo{existing: map[string]bool{}}
		im := &seeder.Importer{Products: repo}

		rep, err := im.ImportFromHTML(context.Background(), writeFrontend(t))
		require.NoError(t, err)
		assert.Equal(t, 3, rep.Inserted)
		assert.Equal(t, 0, rep.Skipped)
		assert.Equal(t, 0, rep.Failed)

		require.Len(t, repo.created, 3)
		first := repo.created[0]
		assert.Equal(t, "Taza Clasica", first.Name)
		assert.Equal(t, "", first.Description)
		assert.Equal(t, 0.0, first.Price)
		assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, first.Photo)

		// remera.png does not exist on disk, the row still seeds
		assert.Equal(t, "Remera Logo", repo.created[1].Name)
		assert.Nil(t, repo.created[1].Photo)
	})

	t.Run("SkipsExistingByName", func(t *testing.T) {
		repo := &fakeProductRepo{existing: map[string]bool{"Taza Clasica": true}}
		im := &seeder.Importer{Products: repo}

		rep, err := im.ImportFromHTML(context.Background(), writeFrontend(t))
		require.NoError(t, err)
		assert.Equal(t, 2, rep.Inserted)
		assert.Equal(t, 1, rep.Skipped)
	})

	t.Run("BadRowDoesNotAbortBatch", func(t *testing.T) {
		repo := &fakeProductRepo{existing: map[string]bool{}, failFor: "Remera Logo"}
		im := &seeder.Importer{Products: repo}

		rep, err := im.ImportFromHTML(context.Background(), writeFrontend(t))
		require.NoError(t, err)
		assert.Equal(t, 2, rep.Inserted)
		assert.Equal(t, 1, rep.Failed)
	})

	t.Run("MissingLandingPage", func(t *testing.T) {
		repo := &fakeProductRepo{existing: map[string]bool{}}
		im := &seeder.Importer{Products: repo}

		rep, err := im.ImportFromHTML(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Zero(t, rep.Inserted)
		assert.Empty(t, repo.created)
	})
}
