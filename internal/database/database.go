package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"flash_sale_back_end/internal/config"

	"github.com/gocql/gocql"
)

// ScyllaManager garde une session par keyspace. Une session ouverte est réutilisée telle quelle
// (gocql gère la reconnexion aux nœuds) ; elle n'est recréée que si elle a été fermée.
type ScyllaManager struct {
	cfg      config.ScyllaConfig
	sessions map[string]*gocql.Session // keyspace → session
	mu       sync.RWMutex

	// newSession est remplaçable en test
	newSession func(keyspace string) (*gocql.Session, error)
}

func NewScyllaManager(cfg config.ScyllaConfig) *ScyllaManager {
	sm := &ScyllaManager{
		cfg:      cfg,
		sessions: make(map[string]*gocql.Session),
	}
	sm.newSession = func(keyspace string) (*gocql.Session, error) {
		return createScyllaCluster(sm.cfg, keyspace).CreateSession()
	}
	return sm
}

// createScyllaCluster crée une configuration de cluster pour un keyspace
func createScyllaCluster(cfg config.ScyllaConfig, keyspace string) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 20

	cluster.MaxWaitSchemaAgreement = 30 * time.Second
	cluster.ReconnectInterval = 1 * time.Second
	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())
	return cluster
}

// Session retourne la session du keyspace des commandes
func (sm *ScyllaManager) Session() (*gocql.Session, error) {
	return sm.GetSession(sm.cfg.Keyspace)
}

// GetSession retourne une session pour un keyspace donné.
// Chemin rapide sous verrou de lecture, sans aller-retour réseau.
func (sm *ScyllaManager) GetSession(keyspace string) (*gocql.Session, error) {
	if keyspace == "" {
		return nil, fmt.Errorf("keyspace non configuré")
	}

	sm.mu.RLock()
	session, exists := sm.sessions[keyspace]
	sm.mu.RUnlock()
	if exists && !session.Closed() {
		return session, nil
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	// Une autre goroutine a pu la créer entre-temps
	if session, exists := sm.sessions[keyspace]; exists {
		if !session.Closed() {
			return session, nil
		}
		delete(sm.sessions, keyspace)
	}

	session, err := sm.newSession(keyspace)
	if err != nil {
		return nil, fmt.Errorf("erreur création session pour %s: %w", keyspace, err)
	}

	sm.sessions[keyspace] = session
	log.Printf("✅ Nouvelle session ScyllaDB pour keyspace '%s'", keyspace)
	return session, nil
}

// EnsureKeyspace crée le keyspace des commandes s'il n'existe pas (dev uniquement)
func (sm *ScyllaManager) EnsureKeyspace(ctx context.Context) error {
	session, err := createScyllaCluster(sm.cfg, "").CreateSession()
	if err != nil {
		return fmt.Errorf("erreur connexion ScyllaDB: %w", err)
	}
	defer session.Close()

	cql := fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s
		WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}`, sm.cfg.Keyspace)
	if err := session.Query(cql).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erreur création keyspace %s: %w", sm.cfg.Keyspace, err)
	}
	return nil
}

// Close ferme toutes les sessions ScyllaDB
func (sm *ScyllaManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for keyspace, session := range sm.sessions {
		session.Close()
		log.Printf("🔌 Session ScyllaDB fermée pour keyspace '%s'", keyspace)
	}
	sm.sessions = make(map[string]*gocql.Session)
}
