package bootstrap

import "github.com/vicdevman/portfolio-api/internal/catalog"

// LoadCatalog loads the catalog file at path, or the embedded catalog when
// path is empty.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
