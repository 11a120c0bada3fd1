// Command seed populates the database with demo users, a conference with an
// allocated reviewer pool and sample papers moving through the review flow.
package main

import (
	"log"
	"time"

	"confhub-api/config"
	"confhub-api/models"
	"confhub-api/repositories"
	"confhub-api/services"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "password123"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.InitDB()

	userRepo := repositories.NewUserRepository(db)
	conferenceRepo := repositories.NewConferenceRepository(db)
	paperRepo := repositories.NewPaperRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	conferenceService := services.NewConferenceService(conferenceRepo, userRepo, paperRepo)
	paperService := services.NewPaperService(paperRepo, reviewRepo, conferenceRepo, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password:", err)
	}

	organizer := createUser(userRepo, "Organizer User", "organizer@conf.com", models.RoleAdmin, string(hash))
	reviewer1 := createUser(userRepo, "Reviewer 1", "reviewer1@conf.com", models.RoleReviewer, string(hash))
	reviewer2 := createUser(userRepo, "Reviewer 2", "reviewer2@conf.com", models.RoleReviewer, string(hash))
	reviewer3 := createUser(userRepo, "Reviewer 3", "reviewer3@conf.com", models.RoleReviewer, string(hash))
	author := createUser(userRepo, "Author User", "author@conf.com", models.RoleAuthor, string(hash))
	log.Printf("Users created: organizer=%d reviewers=[%d %d %d] author=%d",
		organizer.ID, reviewer1.ID, reviewer2.ID, reviewer3.ID, author.ID)

	conference, err := conferenceService.CreateConference(models.CreateConferenceRequest{
		Title:    "Tech Conference 2026",
		Location: "Bucharest",
		Date:     time.Now().AddDate(0, 3, 0).Format("2006-01-02"),
	}, organizer.ID)
	if err != nil {
		log.Fatal("Failed to create conference:", err)
	}

	if _, err := conferenceService.AssignReviewers(conference.ID,
		[]uint{reviewer1.ID, reviewer2.ID, reviewer3.ID}); err != nil {
		log.Fatal("Failed to allocate reviewers:", err)
	}
	log.Printf("Conference %d created with 3 reviewers allocated", conference.ID)

	paper1, err := paperService.SubmitPaper(models.SubmitPaperRequest{
		Title:        "Machine Learning in Healthcare",
		Abstract:     "This paper explores ML algorithms in medical diagnosis",
		VersionLink:  "ml_healthcare_v1.pdf",
		ConferenceID: conference.ID,
	}, author.ID)
	if err != nil {
		log.Fatal("Failed to submit paper 1:", err)
	}
	log.Printf("Paper %d submitted, status=%s, %d reviewers assigned",
		paper1.ID, paper1.Status, len(paper1.Reviews))

	paper2, err := paperService.SubmitPaper(models.SubmitPaperRequest{
		Title:        "Blockchain in Supply Chain",
		Abstract:     "Analysis of blockchain applications",
		VersionLink:  "blockchain_v1.pdf",
		ConferenceID: conference.ID,
	}, author.ID)
	if err != nil {
		log.Fatal("Failed to submit paper 2:", err)
	}
	log.Printf("Paper %d submitted, status=%s", paper2.ID, paper2.Status)

	// Walk paper 1 through a review round and a revision upload.
	if _, err := paperService.SubmitOrUpdateReview(paper1.ID, paper1.Reviews[0].ReviewerID,
		models.VerdictChangesRequested, "Please add more details in methodology section"); err != nil {
		log.Fatal("Failed to submit review:", err)
	}
	if _, err := paperService.SubmitOrUpdateReview(paper1.ID, paper1.Reviews[1].ReviewerID,
		models.VerdictApproved, "Good work, well structured"); err != nil {
		log.Fatal("Failed to submit review:", err)
	}

	paper1, err = paperService.GetPaper(paper1.ID)
	if err != nil {
		log.Fatal("Failed to reload paper 1:", err)
	}
	log.Printf("Paper %d reviewed, status=%s", paper1.ID, paper1.Status)

	paper1, err = paperService.UploadNewVersion(paper1.ID, "ml_healthcare_v2.pdf")
	if err != nil {
		log.Fatal("Failed to upload new version:", err)
	}
	log.Printf("Paper %d version %d uploaded, status=%s",
		paper1.ID, len(paper1.VersionHistory), paper1.Status)

	log.Println("Seed complete")
}

func createUser(repo repositories.UserRepository, name, email string, role models.UserRole, hash string) *models.User {
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := repo.Create(user); err != nil {
		log.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}
