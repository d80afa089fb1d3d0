package cmd

// Config carries everything the process needs from the environment.
// Station secrets arrive already hashed; plain secrets never touch the
// configuration surface.
type Config struct {
	HTTPPort string

	// SqliteDSN selects the embedded ledger. A shared-cache memory DSN
	// keeps the ledger in-process; a file path persists it.
	SqliteDSN string

	KitchenSecretHash   string
	LogisticsSecretHash string
	JWTSigningKey       string

	TableCount                 int
	TableReleaseGraceSeconds   int
	UrgentWaitThresholdMinutes int
}
