package cmd

import (
	accounthttp "courieraccounts/internal/adapters/in/http"
	"courieraccounts/internal/adapters/out/postgres"
	"courieraccounts/internal/core/application/usecases/commands"
	"courieraccounts/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAccountCommandHandler() commands.DeleteAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveAccountsCountQueryHandler() queries.GetActiveAccountsCountQueryHandler {
	return queries.NewGetActiveAccountsCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *accounthttp.Server {
	return accounthttp.NewServer(
		c.CreateCreateAccountCommandHandler(),
		c.CreateDeleteAccountCommandHandler(),
		c.CreateLoginQueryHandler(),
	)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
