// Package data embeds the MariaDB initdb scripts for the flashdeck
// schema (users, flashcards, scores, quiz_attempts) and the app grants.
package data

import (
	_ "embed"
)

//go:embed initdb/mariadb/002-ddl-tables.sql
var InitdbMariaDBTables string

//go:embed initdb/mariadb/003-ddl-privileges.sql
var InitdbMariaDBPrivileges string
