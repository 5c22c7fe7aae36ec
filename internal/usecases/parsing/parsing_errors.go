package parsing

import "errors"

// ErrNoValidRecords indica que nenhuma linha do conteúdo gerou um registro válido
var ErrNoValidRecords = errors.New("No valid production records found. Ensure Column A has names and Column B has numbers.")
