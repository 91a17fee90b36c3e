// Package session contiene el almacén de sesión: la única fuente de verdad sobre
// quién está autenticado en esta instancia.
//
// Ciclo de vida:
//
//	uninitialized ──Restore──► unauthenticated | authenticated(user)
//	unauthenticated ──Login/LoginWithGoogle──► authenticated(user)
//	authenticated ──Logout──► unauthenticated
//
// Solo Store muta la sesión; los demás componentes (guard, pantallas) leen copias.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/battery-supply-chain/internal/domain"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/domain/repository"
	"github.com/jhoicas/battery-supply-chain/pkg/logger"
	"github.com/jhoicas/battery-supply-chain/pkg/metrics"
)

// Status estado del almacén de sesión.
type Status string

const (
	StatusUninitialized   Status = "uninitialized"
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticated   Status = "authenticated"
)

// Snapshot vista inmutable del estado de la sesión en un instante.
type Snapshot struct {
	Status Status
	User   *entity.User
}

// Loading indica que Restore aún no terminó: ninguna decisión de navegación debe tomarse.
func (s Snapshot) Loading() bool { return s.Status == StatusUninitialized }

// Authenticated indica que hay un usuario activo.
func (s Snapshot) Authenticated() bool { return s.Status == StatusAuthenticated && s.User != nil }

// Config parámetros del almacén.
type Config struct {
	StorageKey  string        // clave fija con espacio de nombres
	LoginDelay  time.Duration // latencia simulada de Login
	GoogleDelay time.Duration // latencia simulada de LoginWithGoogle
}

// Store almacén de sesión de un solo escritor.
type Store struct {
	kv     repository.KeyValueStore
	dir    repository.UserDirectory
	verify CredentialVerifier
	cfg    Config
	log    *logger.Logger

	writeMu sync.Mutex // serializa persistencia + cambio en memoria
	mu      sync.RWMutex
	status  Status
	user    *entity.User
}

// NewStore construye el almacén en estado uninitialized. Debe llamarse Restore antes de servir pantallas.
func NewStore(kv repository.KeyValueStore, dir repository.UserDirectory, verify CredentialVerifier, cfg Config, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		kv:     kv,
		dir:    dir,
		verify: verify,
		cfg:    cfg,
		log:    log.Named("session"),
		status: StatusUninitialized,
	}
}

// Restore intenta recuperar la sesión persistida. Ausente, ilegible o malformada
// equivale a "sin sesión". Si mientras tanto ocurrió un login o logout, ese estado prevalece.
func (s *Store) Restore(ctx context.Context) Snapshot {
	restored, err := s.load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
	case errors.Is(err, domain.ErrMalformedSession):
		s.log.Warn().Err(err).Msg("sesión persistida descartada")
	default:
		metrics.StorageFailures.WithLabelValues("read").Inc()
		s.log.Warn().Err(err).Msg("no se pudo leer la sesión persistida")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusUninitialized {
		if restored != nil {
			s.user = restored
			s.status = StatusAuthenticated
		} else {
			s.status = StatusUnauthenticated
		}
	}
	return s.snapshotLocked()
}

func (s *Store) load(ctx context.Context) (*entity.User, error) {
	raw, err := s.kv.Get(ctx, s.cfg.StorageKey)
	if err != nil {
		return nil, err
	}
	var u entity.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSession, err)
	}
	if !u.WellFormed() {
		return nil, fmt.Errorf("%w: faltan id/username o rol inválido", domain.ErrMalformedSession)
	}
	return &u, nil
}

// Login busca en el directorio la entrada con ese username y rol y valida la contraseña.
// Devuelve false sin tocar la sesión si no hay coincidencia, la contraseña no se acepta
// o ctx se cancela durante la latencia simulada.
func (s *Store) Login(ctx context.Context, username, password string, role entity.Role) bool {
	if err := wait(ctx, s.cfg.LoginDelay); err != nil {
		metrics.LoginAttempts.WithLabelValues("password", "cancelled").Inc()
		return false
	}

	entry, ok := s.dir.FindByUsernameAndRole(username, role)
	if !ok || !s.verify(*entry, password) {
		metrics.LoginAttempts.WithLabelValues("password", "failure").Inc()
		s.log.Info().Str("username", username).Str("role", role.String()).Msg("login rechazado")
		return false
	}

	s.establish(ctx, *entry)
	metrics.LoginAttempts.WithLabelValues("password", "success").Inc()
	s.log.Info().Str("user_id", entry.ID).Str("role", role.String()).Msg("login correcto")
	return true
}

// LoginWithGoogle simula un login federado exitoso: toma el primer usuario del rol
// y le asigna un email sintetizado. No hay flujo OAuth real.
func (s *Store) LoginWithGoogle(ctx context.Context, role entity.Role) bool {
	if err := wait(ctx, s.cfg.GoogleDelay); err != nil {
		metrics.LoginAttempts.WithLabelValues("google", "cancelled").Inc()
		return false
	}

	entry, ok := s.dir.FirstByRole(role)
	if !ok {
		metrics.LoginAttempts.WithLabelValues("google", "failure").Inc()
		return false
	}
	u := *entry
	u.Email = SynthesizedEmail(role)

	s.establish(ctx, u)
	metrics.LoginAttempts.WithLabelValues("google", "success").Inc()
	s.log.Info().Str("user_id", u.ID).Str("role", role.String()).Msg("login federado simulado")
	return true
}

// SynthesizedEmail email asignado por el login federado simulado.
func SynthesizedEmail(role entity.Role) string {
	return role.String() + "@gmail.com"
}

// establish persiste y activa la sesión. Un fallo al persistir no bloquea la
// sesión en memoria: solo se registra, y la sesión no sobrevivirá a un reinicio.
func (s *Store) establish(ctx context.Context, u entity.User) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	payload, err := json.Marshal(u)
	if err == nil {
		err = s.kv.Set(ctx, s.cfg.StorageKey, string(payload))
	}
	if err != nil {
		metrics.StorageFailures.WithLabelValues("write").Inc()
		s.log.Warn().Err(err).Str("user_id", u.ID).Msg("no se pudo persistir la sesión")
	}

	s.mu.Lock()
	s.user = &u
	s.status = StatusAuthenticated
	s.mu.Unlock()
}

// logoutTimeout límite del borrado persistente en Logout.
const logoutTimeout = 5 * time.Second

// Logout borra la sesión persistida y la de memoria incondicionalmente.
func (s *Store) Logout(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// Un logout iniciado debe llegar al almacenamiento aunque el llamador cancele.
	delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutTimeout)
	defer cancel()
	if err := s.kv.Delete(delCtx, s.cfg.StorageKey); err != nil {
		metrics.StorageFailures.WithLabelValues("delete").Inc()
		s.log.Warn().Err(err).Msg("no se pudo borrar la sesión persistida")
	}

	s.mu.Lock()
	s.user = nil
	s.status = StatusUnauthenticated
	s.mu.Unlock()
	s.log.Info().Msg("logout")
}

// Current devuelve una copia del usuario activo o nil.
func (s *Store) Current() *entity.User {
	return s.Snapshot().User
}

// IsLoading indica si Restore aún no terminó.
func (s *Store) IsLoading() bool {
	return s.Snapshot().Loading()
}

// Snapshot devuelve el estado actual; el usuario es una copia.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Status: s.status}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
