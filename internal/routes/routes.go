package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/config"
	"github.com/sammblanc/armariointeligente2.0/internal/handlers"
	"github.com/sammblanc/armariointeligente2.0/internal/middleware"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	usuarioService := services.NewUsuarioService(db)
	tipoUsuarioService := services.NewTipoUsuarioService(db)
	condominioService := services.NewCondominioService(db)
	armarioService := services.NewArmarioService(db)
	compartimentoService := services.NewCompartimentoService(db)
	entregaService := services.NewEntregaService(db)
	reservaService := services.NewReservaService(db)

	authHandler := handlers.NewAuthHandler(usuarioService, cfg)
	tipoUsuarioHandler := handlers.NewTipoUsuarioHandler(tipoUsuarioService)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioService)
	condominioHandler := handlers.NewCondominioHandler(condominioService)
	armarioHandler := handlers.NewArmarioHandler(armarioService)
	compartimentoHandler := handlers.NewCompartimentoHandler(compartimentoService)
	entregaHandler := handlers.NewEntregaHandler(entregaService)
	reservaHandler := handlers.NewReservaHandler(reservaService)

	admin := middleware.RequireRoles(models.RoleAdministrador)
	adminOrEntregador := middleware.RequireRoles(models.RoleAdministrador, models.RoleEntregador)

	api := app.Group("/api/v1")

	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.Authenticate(cfg))

	tipos := protected.Group("/tipos-usuario")
	tipos.Post("/", admin, tipoUsuarioHandler.Create)
	tipos.Get("/", tipoUsuarioHandler.List)
	tipos.Get("/:id", tipoUsuarioHandler.Get)
	tipos.Put("/:id", admin, tipoUsuarioHandler.Update)
	tipos.Delete("/:id", admin, tipoUsuarioHandler.Delete)

	usuarios := protected.Group("/usuarios")
	usuarios.Post("/", admin, usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/ativos", usuarioHandler.ListAtivos)
	usuarios.Get("/:id", middleware.RequireRolesOrSelf("id", models.RoleAdministrador), usuarioHandler.Get)
	usuarios.Put("/:id", middleware.RequireRolesOrSelf("id", models.RoleAdministrador), usuarioHandler.Update)
	usuarios.Put("/:id/desativar", admin, usuarioHandler.Desativar)
	usuarios.Put("/:id/ativar", admin, usuarioHandler.Ativar)
	usuarios.Delete("/:id", admin, usuarioHandler.Delete)

	condominios := protected.Group("/condominios")
	condominios.Post("/", admin, condominioHandler.Create)
	condominios.Get("/", condominioHandler.List)
	condominios.Get("/:id", condominioHandler.Get)
	condominios.Put("/:id", admin, condominioHandler.Update)
	condominios.Delete("/:id", admin, condominioHandler.Delete)

	armarios := protected.Group("/armarios")
	armarios.Post("/", admin, armarioHandler.Create)
	armarios.Get("/", armarioHandler.List)
	armarios.Get("/condominio/:condominioId", armarioHandler.ListByCondominio)
	armarios.Get("/:id", armarioHandler.Get)
	armarios.Put("/:id", admin, armarioHandler.Update)
	armarios.Delete("/:id", admin, armarioHandler.Delete)

	compartimentos := protected.Group("/compartimentos")
	compartimentos.Post("/", admin, compartimentoHandler.Create)
	compartimentos.Get("/", compartimentoHandler.List)
	compartimentos.Get("/armario/:armarioId", compartimentoHandler.ListByArmario)
	compartimentos.Get("/status", compartimentoHandler.ListByStatus)
	compartimentos.Get("/:id", compartimentoHandler.Get)
	compartimentos.Put("/:id", admin, compartimentoHandler.Update)
	compartimentos.Put("/:id/status", adminOrEntregador, compartimentoHandler.UpdateStatus)
	compartimentos.Put("/:id/codigo-acesso", admin, compartimentoHandler.RegenerateCode)
	compartimentos.Delete("/:id", admin, compartimentoHandler.Delete)

	entregas := protected.Group("/entregas")
	entregas.Post("/", adminOrEntregador, entregaHandler.Register)
	entregas.Put("/:id/retirada", middleware.RequireRoles(models.RoleAdministrador, models.RoleCliente, models.RoleEntregador), entregaHandler.RegisterPickup)
	entregas.Put("/:id/cancelar", adminOrEntregador, entregaHandler.Cancel)
	entregas.Get("/", adminOrEntregador, entregaHandler.List)
	entregas.Get("/compartimento/:compartimentoId", adminOrEntregador, entregaHandler.ListByCompartimento)
	entregas.Get("/entregador/:entregadorId", adminOrEntregador, entregaHandler.ListByEntregador)
	entregas.Get("/destinatario/:destinatarioId", middleware.RequireRolesOrSelf("destinatarioId", models.RoleAdministrador, models.RoleEntregador), entregaHandler.ListByDestinatario)
	entregas.Get("/status/:status", adminOrEntregador, entregaHandler.ListByStatus)
	entregas.Get("/rastreio/:codigoRastreio", middleware.RequireRoles(models.RoleAdministrador, models.RoleEntregador, models.RoleCliente), entregaHandler.GetByCodigoRastreio)
	entregas.Get("/periodo", adminOrEntregador, entregaHandler.ListByPeriodo)
	entregas.Get("/:id", entregaHandler.Get)

	reservas := protected.Group("/reservas")
	reservas.Post("/", middleware.RequireRoles(models.RoleAdministrador, models.RoleCliente), reservaHandler.Create)
	reservas.Put("/:id/cancelar", reservaHandler.Cancel)
	reservas.Put("/:id/concluir", admin, reservaHandler.Complete)
	reservas.Get("/", reservaHandler.List)
	reservas.Get("/compartimento/:compartimentoId", reservaHandler.ListByCompartimento)
	reservas.Get("/usuario/:usuarioId", middleware.RequireRolesOrSelf("usuarioId", models.RoleAdministrador), reservaHandler.ListByUsuario)
	reservas.Get("/status/:status", reservaHandler.ListByStatus)
	reservas.Get("/periodo", reservaHandler.ListByPeriodo)
	reservas.Get("/:id", reservaHandler.Get)
}
