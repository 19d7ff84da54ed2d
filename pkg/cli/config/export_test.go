package config

// NewAdminForTest builds Admin without parsing flags.
func NewAdminForTest(user, password string) *Admin {
	return &Admin{user: user, password: password}
}

// NewRepositoryForTest builds Repository without parsing flags.
func NewRepositoryForTest(firestoreProjectID, sqlitePath string) *Repository {
	return &Repository{
		firestore: Firestore{projectID: firestoreProjectID},
		sqlite:    SQLite{path: sqlitePath},
	}
}
