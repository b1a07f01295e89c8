package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/catalog"
	"github.com/josewalke/web-salud-mental/internal/domain"
	"github.com/josewalke/web-salud-mental/internal/progress"
)

// Cuestionario interactivo por terminal: restaura borradores, guarda el
// avance con autosave debounced y sincroniza al backend al completar.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	logger := zap.NewExample()
	defer logger.Sync()

	baseURL := os.Getenv("SYNC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	drafts := progress.NewMemoryDraftStore()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("warning: redis no disponible, usando memoria: %v", err)
		} else {
			drafts = progress.NewRedisDraftStore(client)
		}
	}

	store := progress.NewStore(logger, drafts, progress.NewHTTPSyncClient(baseURL, logger))

	qType := chooseType(reader)
	questions, err := catalog.ForType(qType)
	if err != nil {
		log.Fatal(err)
	}

	draft, found, err := store.Restore(ctx, qType)
	if err != nil {
		log.Fatalf("restaurar borrador: %v", err)
	}

	startIndex := 0
	if found {
		fmt.Printf("Hay un borrador de %s (%d respuestas). [C]ontinuar o [N]uevo: ", qType, len(draft.Answers))
		choice, _ := reader.ReadString('\n')
		if strings.EqualFold(strings.TrimSpace(choice), "N") {
			if err := store.Reset(ctx, qType); err != nil {
				log.Fatalf("reiniciar: %v", err)
			}
			found = false
		} else {
			startIndex = draft.CurrentQuestionIndex
		}
	}

	if !found {
		info := collectPersonalInfo(reader)
		for {
			err := store.SubmitPersonalInfo(ctx, qType, info)
			if err == nil {
				break
			}
			var verr *progress.ValidationError
			if errors.As(err, &verr) {
				fmt.Printf("Datos inválidos (%s). Vuelve a intentarlo.\n", strings.Join(verr.Fields, ", "))
				info = collectPersonalInfo(reader)
				continue
			}
			log.Fatalf("guardar datos personales: %v", err)
		}
	}

	runQuestions(reader, store, questions, startIndex)

	for {
		err := store.SubmitCompleted(ctx, qType, questions)
		if err == nil {
			fmt.Println("Cuestionario sincronizado. ¡Gracias!")
			return
		}
		var verr *progress.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("Faltan preguntas obligatorias: %v\n", verr.MissingQuestionIDs)
			runQuestions(reader, store, questions, 0)
			continue
		}
		var serr *progress.SyncError
		if errors.As(err, &serr) {
			fmt.Printf("Fallo de sincronización (%v). [R]eintentar o [S]alir: ", serr)
			choice, _ := reader.ReadString('\n')
			if strings.EqualFold(strings.TrimSpace(choice), "R") {
				continue
			}
			fmt.Println("El borrador queda guardado; puedes reintentar más tarde.")
			return
		}
		log.Fatalf("completar cuestionario: %v", err)
	}
}

func chooseType(reader *bufio.Reader) string {
	for {
		fmt.Print("Cuestionario [1] Pareja [2] Personalidad: ")
		choice, _ := reader.ReadString('\n')
		switch strings.TrimSpace(choice) {
		case "1":
			return domain.QuestionnaireTypePareja
		case "2":
			return domain.QuestionnaireTypePersonalidad
		}
		fmt.Println("Selección inválida.")
	}
}

func collectPersonalInfo(reader *bufio.Reader) domain.PersonalInfo {
	ask := func(label string) string {
		fmt.Printf("%s: ", label)
		value, _ := reader.ReadString('\n')
		return strings.TrimSpace(value)
	}
	return domain.PersonalInfo{
		Name:        ask("Nombre"),
		Surname:     ask("Apellidos"),
		Age:         ask("Edad"),
		Gender:      ask("Género"),
		Email:       ask("Email"),
		Orientation: ask("Orientación sexual"),
	}
}

func runQuestions(reader *bufio.Reader, store *progress.Store, questions []domain.Question, startIndex int) {
	i := startIndex
	for i < len(questions) {
		q := questions[i]
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(questions), q.Text)
		for n, opt := range q.Options {
			fmt.Printf("  [%d] %s\n", n+1, opt)
		}
		fmt.Print("Respuesta ('<' para volver, vacío para saltar): ")
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)

		if raw == "<" {
			store.Retreat()
			if i > 0 {
				i--
			}
			continue
		}
		if raw != "" {
			answer := raw
			if len(q.Options) > 0 {
				if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(q.Options) {
					answer = q.Options[n-1]
				}
			}
			store.RecordAnswer(q.ID, answer)
		}
		store.Advance()
		i++
	}
}
