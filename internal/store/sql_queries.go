package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Lysande2902/Numeros/models"
)

const (
	createNumber = `INSERT INTO parity_numbers (value, parity)
    VALUES ($1, $2)
    RETURNING id, value, parity;`

	getNumberByID = `SELECT id, value, parity
    FROM parity_numbers
    WHERE id = $1;`

	countNumbers = `SELECT COUNT(*) FROM parity_numbers;`

	updateNumber = `UPDATE parity_numbers
    SET value = $1, parity = $2
    WHERE id = $3;`

	numberExists = `SELECT EXISTS(SELECT 1 FROM parity_numbers WHERE id = $1);`

	deleteNumber = `DELETE FROM parity_numbers
    WHERE id = $1;`
)

// buildListNumbersQuery builds the paginated listing query. The stable
// primary-key ordering is what makes page slices reproducible between
// requests.
func buildListNumbersQuery(limit, offset uint64) (string, []any, error) {
	query, args, err := sq.
		Select("id", "value", "parity").
		From(models.Number{}.TableName()).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
