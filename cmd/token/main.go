// Command token mints a bearer token for local testing of the lending API.
package main

import (
	"flag"
	"fmt"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Astemirdum/lab-lending/pkg/auth"
)

func main() {
	sub := flag.String("sub", "", "user id")
	role := flag.String("role", string(auth.RoleDocente), "admin or docente")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load() //nolint:errcheck
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		stdLog.Fatal("JWT_SECRET is not set")
	}
	a := auth.Actor{ID: *sub, Role: auth.Role(*role)}
	if a.ID == "" || !a.Role.Valid() {
		stdLog.Fatal("usage: token -sub <id> -role admin|docente")
	}
	token, err := auth.NewToken([]byte(secret), a, *ttl)
	if err != nil {
		stdLog.Fatal(err)
	}
	fmt.Println(token)
}
