package schema

import (
	"context"

	"github.com/ribgsilva/note-service/persistence/v1/schema"
	"github.com/ribgsilva/note-service/platform/database"
	"github.com/ribgsilva/note-service/sys"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

func ListCommands() {
	println("Schema Commands")
	println("\tcreate\t\t\t- Creates the schema")
	println("\tdelete\t\t\t- Deletes the schema")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()

	var cfg sys.Config
	cfg.LoadDatabase(log)

	db, err := database.Open(cfg.Database.Driver, cfg.Database.ConnectionURL, cfg.Database.PingTimeout)
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()

	switch options[0] {
	case "create":
		println("creating schema")
		if err := schema.Create(context.Background(), log, db, cfg.Database.Driver); err != nil {
			println("failed to create schema:", err.Error())
		} else {
			println("created schema")
		}
	case "delete":
		println("deleting schema")
		if err := schema.Drop(context.Background(), log, db, cfg.Database.Driver); err != nil {
			println("failed to delete schema:", err.Error())
		} else {
			println("deleted schema")
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}
