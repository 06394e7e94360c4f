package instance

import "os"

// ID identifies this replica in logs and lock ownership. Heroku sets DYNO;
// containers fall back to HOSTNAME.
func ID() string {
	for _, key := range []string{"DYNO", "HOSTNAME"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	return "local"
}
