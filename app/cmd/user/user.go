package user

import (
	"context"

	"github.com/ribgsilva/note-service/business/v1/user"
	userstore "github.com/ribgsilva/note-service/persistence/v1/user"
	"github.com/ribgsilva/note-service/platform/database"
	"github.com/ribgsilva/note-service/sys"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

func ListCommands() {
	println("User Commands")
	println("\tpromote <username>\t- Gives the admin role to username")
	println("\tdemote <username>\t- Gives the user role to username")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) < 2 {
		ListCommands()
		return
	}

	var role string
	switch options[0] {
	case "promote":
		role = user.RoleAdmin
	case "demote":
		role = user.RoleUser
	default:
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

	// tokens are not used to change roles
	core := user.NewCore(log, userstore.NewStore(db, cfg.Database.OperationTimeout), nil)
	if err := core.SetRole(context.Background(), options[1], role); err != nil {
		println("failed to change role:", err.Error())
		return
	}
	println("role of", options[1], "is now", role)
}
