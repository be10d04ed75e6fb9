package sqlite

// Schema DDL. Book IDs are assigned by the caller and only grow, so ordering
// by id is insertion order.
const (
	createBooks = `CREATE TABLE books (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    year INTEGER NOT NULL,
    available INTEGER NOT NULL DEFAULT 1
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createBooks,
}
