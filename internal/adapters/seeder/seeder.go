package seeder

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/axcelcuno/tienda/internal/domain"
)

// Importer seeds the catalog from the product cards already present in the
// static landing page, so a fresh database shows the same products the page
// does.
type Importer struct {
	Products domain.ProductRepo
}

// Report tallies the outcome of one lenient import run. A row that fails to
// insert is counted, not fatal: one bad card must not abort the batch.
type Report struct {
	Inserted int
	Skipped  int
	Failed   int
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ImportFromHTML parses frontendDir/html/inicio.html for product cards
// (article.productos with a header.producto title and an img). Product name is
// the natural key: cards whose name already exists are skipped.
func (im *Importer) ImportFromHTML(ctx context.Context, frontendDir string) (Report, error) {
	var rep Report

	f, err := os.Open(filepath.Join(frontendDir, "html", "inicio.html"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rep, nil
		}
		return rep, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return rep, err
	}

	doc.Find("article.productos").Each(func(i int, sel *goquery.Selection) {
		name := whitespaceRe.ReplaceAllString(strings.TrimSpace(sel.Find("header.producto").First().Text()), " ")
		if name == "" {
			return
		}

		exists, err := im.Products.ExistsByName(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("nombre", name).Msg("seed: comprobar existencia")
			rep.Failed++
			return
		}
		if exists {
			rep.Skipped++
			return
		}

		var photo []byte
		if src, ok := sel.Find("img").First().Attr("src"); ok {
			photo = readImage(frontendDir, src)
		}

		p := &domain.Product{Name: name, Description: "", Price: 0, Photo: photo}
		if err := im.Products.Create(ctx, p); err != nil {
			log.Warn().Err(err).Str("nombre", name).Msg("seed: insertar producto")
			rep.Failed++
			return
		}
		rep.Inserted++
	})

	return rep, nil
}

// readImage resolves a relative img src under frontendDir. Best effort: a
// missing or unreadable file just means the row seeds without a photo.
func readImage(frontendDir, src string) []byte {
	clean := strings.ReplaceAll(src, "..", "")
	clean = strings.TrimPrefix(clean, "/")
	data, err := os.ReadFile(filepath.Join(frontendDir, filepath.FromSlash(clean)))
	if err != nil {
		return nil
	}
	return data
}
