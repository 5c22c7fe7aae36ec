package badger

import (
	"fmt"
	"os"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// Open abre (ou cria) o banco embarcado no diretório informado.
// Com path vazio o banco fica só em memória.
func Open(path string) (*badgerdb.DB, error) {
	var opts badgerdb.Options
	if path == "" {
		opts = badgerdb.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0o750); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório do badger: %w", err)
		}
		opts = badgerdb.DefaultOptions(path)
	}

	opts = opts.WithLogger(logrus.WithField("component", "badger"))

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o badger em %q: %w", path, err)
	}

	return db, nil
}
