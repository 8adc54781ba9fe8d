package main

import (
	"log"

	"github.com/gipis/website/internal/config"
	"github.com/gipis/website/internal/database"
	"github.com/gipis/website/internal/services"
	"github.com/gipis/website/internal/store"
	"github.com/joho/godotenv"
)

// Applies the default password to every member that has none yet. Members
// are expected to change it after their first login.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	st := store.NewStore(db)
	authService := services.NewAuthService(cfg, st)

	members, err := st.AllMembers()
	if err != nil {
		log.Fatalf("Failed to load members: %v", err)
	}

	if len(members) == 0 {
		log.Println("No hay miembros en la base de datos.")
		return
	}

	log.Printf("Encontrados %d miembros.", len(members))
	log.Printf("Estableciendo contraseña por defecto: %s", cfg.DefaultPassword)

	updated := 0
	for i := range members {
		member := &members[i]

		if member.PasswordHash != nil && *member.PasswordHash != "" {
			log.Printf("  ~ Ya tiene contraseña: %s", member.Name)
			continue
		}

		if err := authService.SetPassword(member, cfg.DefaultPassword); err != nil {
			log.Fatalf("Failed to hash password for %s: %v", member.Name, err)
		}
		if err := st.SaveMember(member); err != nil {
			log.Fatalf("Failed to save %s: %v", member.Name, err)
		}
		updated++
		log.Printf("  + Contraseña establecida para: %s (%s)", member.Name, member.Email)
	}

	log.Printf("Proceso completado. %d contraseñas establecidas.", updated)
	log.Printf("Los miembros pueden ingresar con su email y la contraseña: %s", cfg.DefaultPassword)
}
