package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"taskpad/internal/config"
	"taskpad/internal/notify"
	"taskpad/internal/result"
	"taskpad/internal/server"
	"taskpad/internal/service"
	"taskpad/internal/session"
	"taskpad/internal/store"
	"taskpad/internal/task"
)

func main() {
	mode := flag.String("mode", "help", "help|serve|list|add|toggle|edit|rm|export")
	title := flag.String("title", "", "task title (add/edit modes)")
	id := flag.String("id", "", "task id (toggle/edit/rm modes)")
	filter := flag.String("filter", "all", "list filter: all|active|completed")
	format := flag.String("format", "json", "export format: json|csv|pdf")
	out := flag.String("out", "tasks.json", "export output path")
	httpAddr := flag.String("http-addr", "", "http listen address (server mode, overrides HTTP_ADDR)")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()

	st, err := store.New(cfg.DSN)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer st.Close()

	var dispatcher *notify.Dispatcher
	if cfg.WebhookURL != "" {
		dispatcher = notify.NewDispatcher(notify.NewWebhook(cfg.WebhookURL))
	}
	svc := service.New(st, dispatcher, cfg.Owner)
	sess := session.New(st, svc, cfg.Owner)

	switch *mode {
	case "serve":
		addr := cfg.HTTPAddr
		if *httpAddr != "" {
			addr = *httpAddr
		}
		srv := server.New(st, svc, cfg.Owner)
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(ctx, addr); err != nil {
			log.Fatalf("server: %v", err)
		}

	case "list":
		if err := sess.Load(ctx); err != nil {
			log.Fatalf("load tasks: %v", err)
		}
		sess.SetFilter(parseFilter(*filter))
		counts := sess.Counts()
		fmt.Printf("Tasks (%s): %d all / %d active / %d completed\n", sess.Filter(), counts.All, counts.Active, counts.Completed)
		for _, t := range sess.Filtered() {
			mark := " "
			if t.IsComplete {
				mark = "x"
			}
			fmt.Printf("[%s] %s  %s  (%s)\n", mark, t.ID, t.Title, t.CreatedAt.Format("2006-01-02 15:04"))
		}

	case "add":
		created, err := sess.Add(ctx, *title)
		if err != nil {
			log.Fatalf("add task: %v", err)
		}
		dispatcher.Wait()
		fmt.Printf("Created %s: %s\n", created.ID, created.Title)

	case "toggle":
		if err := sess.Load(ctx); err != nil {
			log.Fatalf("load tasks: %v", err)
		}
		if err := sess.Toggle(ctx, *id); err != nil {
			log.Fatalf("toggle task: %v", err)
		}
		fmt.Println("toggle done")

	case "edit":
		if err := sess.Load(ctx); err != nil {
			log.Fatalf("load tasks: %v", err)
		}
		if err := sess.Edit(ctx, *id, *title); err != nil {
			log.Fatalf("edit task: %v", err)
		}
		fmt.Println("edit done")

	case "rm":
		if err := sess.Delete(ctx, *id); err != nil {
			log.Fatalf("delete task: %v", err)
		}
		fmt.Println("delete done")

	case "export":
		ex := result.NewExporter(st, cfg.Owner)
		b, err := ex.Export(ctx, *format)
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		if err := os.WriteFile(*out, b, 0644); err != nil {
			log.Fatalf("write: %v", err)
		}
		fmt.Printf("Exported -> %s\n", *out)

	default:
		fmt.Println("Usage examples:")
		fmt.Println("  go run ./cmd --mode serve --http-addr :8080")
		fmt.Println("  go run ./cmd --mode add --title 'Buy milk'")
		fmt.Println("  go run ./cmd --mode list --filter active")
		fmt.Println("  go run ./cmd --mode toggle --id <task-id>")
		fmt.Println("  go run ./cmd --mode export --format csv --out ./tasks.csv")
	}
}

func parseFilter(s string) task.Filter {
	switch s {
	case "active":
		return task.FilterActive
	case "completed":
		return task.FilterCompleted
	default:
		return task.FilterAll
	}
}
