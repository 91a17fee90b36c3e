// sessionctl opera el almacén de sesión configurado desde la terminal, sin levantar el servidor.
//
// Uso:
//
//	go run ./cmd/sessionctl restore
//	go run ./cmd/sessionctl login <username> <password> <role>
//	go run ./cmd/sessionctl google <role>
//	go run ./cmd/sessionctl logout
//
// Imprime la sesión resultante en JSON. Sale con código 1 si el login falla.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/application/guard"
	"github.com/jhoicas/battery-supply-chain/internal/application/session"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sampledata"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/storage"
	"github.com/jhoicas/battery-supply-chain/pkg/config"
	"github.com/jhoicas/battery-supply-chain/pkg/logger"
)

const usage = "uso: sessionctl restore | login <username> <password> <role> | google <role> | logout"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Out: os.Stderr})

	ctx := context.Background()
	kv, closeStorage, err := storage.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}

	store := session.NewStore(
		kv,
		sampledata.NewDirectory(),
		session.DemoPasswordVerifier(cfg.Session.DemoPassword),
		session.Config{
			StorageKey:  cfg.Session.StorageKey,
			LoginDelay:  cfg.Session.LoginDelay,
			GoogleDelay: cfg.Session.GoogleDelay,
		},
		log,
	)
	store.Restore(ctx)

	code := run(ctx, store, os.Args[1:])
	closeStorage()
	os.Exit(code)
}

// run ejecuta el subcomando sobre un store ya restaurado y devuelve el código de salida.
func run(ctx context.Context, store *session.Store, args []string) int {
	ok := true
	switch args[0] {
	case "restore":
	case "login":
		if len(args) != 4 {
			fmt.Fprintln(os.Stderr, usage)
			return 2
		}
		role, err := entity.ParseRole(args[3])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Rol: %v\n", err)
			return 2
		}
		ok = store.Login(ctx, args[1], args[2], role)
	case "google":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, usage)
			return 2
		}
		role, err := entity.ParseRole(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Rol: %v\n", err)
			return 2
		}
		ok = store.LoginWithGoogle(ctx, role)
	case "logout":
		store.Logout(ctx)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	if err := printSnapshot(store.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir salida: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Login rechazado")
		return 1
	}
	return 0
}

func printSnapshot(snap session.Snapshot) error {
	out := dto.SessionResponse{Status: string(snap.Status)}
	if snap.Authenticated() {
		out.User = dto.ToUserResponse(snap.User)
		out.Home = guard.HomeRoute(snap.User.Role)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
