package main

import (
	"log"
	"os"

	"github.com/hugohenrick/pdv-livraria/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	appLogger := logger.NewLogger()

	// Criar aplicação
	app, err := NewApp(appLogger)
	if err != nil {
		appLogger.Error("erro ao inicializar a aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.SetupRoutes("/api/v1")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Iniciar o servidor
	if err := app.Start(port); err != nil {
		appLogger.Error("erro ao iniciar o servidor", "error", err)
		os.Exit(1)
	}
}
