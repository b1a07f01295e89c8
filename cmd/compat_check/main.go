package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/config"
	"github.com/josewalke/web-salud-mental/internal/db"
	"github.com/josewalke/web-salud-mental/internal/repository"
	"github.com/josewalke/web-salud-mental/internal/service"
)

// Herramienta de operador: compara dos cuestionarios completados por id y
// muestra el análisis de compatibilidad por consola.
func main() {
	idA := flag.String("a", "", "id del primer cuestionario")
	idB := flag.String("b", "", "id del segundo cuestionario")
	flag.Parse()

	if *idA == "" || *idB == "" {
		log.Fatal("usage: compat_check -a <id> -b <id>")
	}

	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		log.Fatalf("db ping: %v", err)
	}

	questionnaireRepo := repository.NewPgQuestionnaireRepository(pool)
	svc := service.NewQuestionnaireService(logger, questionnaireRepo)

	result, err := svc.Compare(ctx, *idA, *idB)
	if err != nil {
		log.Fatalf("compare: %v", err)
	}

	fmt.Printf("Puntuación: %d/%d (%d%%)\n", result.TotalScore, result.MaxScore, result.CompatibilityPercentage)
	fmt.Printf("Nivel: %s\n", result.CompatibilityLevel)
	fmt.Printf("Revelación de fotos: %v\n", result.CanShowPhotos)
	if result.ShouldStopAnalysis {
		fmt.Println("ANÁLISIS DETENIDO: indicadores de violencia detectados.")
	}
	if result.RecommendTherapy {
		fmt.Println("Se recomienda terapia profesional.")
	}

	fmt.Println("\nDesglose por categoría:")
	for _, cat := range result.DetailedAnalysis {
		mark := " "
		if !cat.Compatible {
			mark = "!"
		}
		fmt.Printf("  [%s] %-25s %d/%d  %s\n", mark, cat.Category, cat.Score, cat.MaxScore, cat.Analysis)
	}

	if len(result.Recommendations) > 0 {
		fmt.Println("\nRecomendaciones:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}
