package sqlstore

import "strconv"

type dialect struct {
	name        string
	driver      string
	createTable string
	bind        func(n int) string
}

var dialectPostgres = dialect{
	name:   "postgres",
	driver: "pgx",
	createTable: `
		CREATE TABLE IF NOT EXISTS "Animal" (
			"Id" integer GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			"Name" text NOT NULL,
			"AnimalType" text NOT NULL,
			"CatData" text NULL
		)
	`,
	bind: func(n int) string { return "$" + strconv.Itoa(n) },
}

var dialectSQLite = dialect{
	name:   "sqlite",
	driver: "sqlite",
	createTable: `
		CREATE TABLE IF NOT EXISTS "Animal" (
			"Id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"Name" TEXT NOT NULL,
			"AnimalType" TEXT NOT NULL,
			"CatData" TEXT NULL
		)
	`,
	bind: func(int) string { return "?" },
}
