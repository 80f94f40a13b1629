package store

import (
	"fmt"

	"github.com/fullsco/core/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func intPtr(v int) *int { return &v }

// Seed loads the demo dataset: the admin account, the taxonomy, and a
// handful of scholarships, articles, stories and SEO rows. Intended for a
// fresh store; duplicate slugs from a second call surface as errors.
func (s *Store) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := s.CreateUser(models.User{
		Username: "admin",
		Password: string(hash),
		Email:    "admin@fullsco.com",
		FullName: "Admin User",
		Role:     models.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	categories := []models.Category{
		{Name: "Undergraduate", Slug: "undergraduate", Description: "Scholarships for undergraduate students"},
		{Name: "Masters", Slug: "masters", Description: "Scholarships for master's degree students"},
		{Name: "PhD", Slug: "phd", Description: "Scholarships for doctoral students"},
		{Name: "Research", Slug: "research", Description: "Scholarships for research programs"},
	}
	for _, c := range categories {
		if _, err := s.CreateCategory(c); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Slug, err)
		}
	}

	levels := []models.Level{
		{Name: "Bachelor", Slug: "bachelor"},
		{Name: "Masters", Slug: "masters"},
		{Name: "PhD", Slug: "phd"},
	}
	for _, l := range levels {
		if _, err := s.CreateLevel(l); err != nil {
			return fmt.Errorf("seed level %q: %w", l.Slug, err)
		}
	}

	countries := []models.Country{
		{Name: "USA", Slug: "usa"},
		{Name: "UK", Slug: "uk"},
		{Name: "Germany", Slug: "germany"},
		{Name: "Canada", Slug: "canada"},
		{Name: "Australia", Slug: "australia"},
	}
	for _, c := range countries {
		if _, err := s.CreateCountry(c); err != nil {
			return fmt.Errorf("seed country %q: %w", c.Slug, err)
		}
	}

	scholarships := []models.Scholarship{
		{
			Title:           "Fulbright Scholarship Program",
			Slug:            "fulbright-scholarship-program",
			Description:     "The Fulbright Program offers grants for U.S. citizens to study, research, or teach English abroad and for non-U.S. citizens to study in the United States.",
			Deadline:        "June 30, 2023",
			Amount:          "$40,000/year",
			IsFeatured:      true,
			IsFullyFunded:   true,
			CountryID:       intPtr(1),
			LevelID:         intPtr(2),
			CategoryID:      intPtr(2),
			Requirements:    "Academic excellence, leadership qualities, research proposal",
			ApplicationLink: "https://foreign.fulbrightonline.org/",
			ImageURL:        "https://images.unsplash.com/photo-1523050854058-8df90110c9f1",
		},
		{
			Title:           "Chevening Scholarships",
			Slug:            "chevening-scholarships",
			Description:     "Chevening is the UK government's international scholarships program funded by the Foreign, Commonwealth and Development Office and partner organizations.",
			Deadline:        "November 2, 2023",
			Amount:          "Full tuition + stipend",
			IsFeatured:      true,
			IsFullyFunded:   true,
			CountryID:       intPtr(2),
			LevelID:         intPtr(2),
			CategoryID:      intPtr(2),
			Requirements:    "Leadership potential, minimum 2 years work experience",
			ApplicationLink: "https://www.chevening.org/",
			ImageURL:        "https://images.unsplash.com/photo-1605007493699-af65834f8a00",
		},
		{
			Title:           "DAAD Scholarships",
			Slug:            "daad-scholarships",
			Description:     "The German Academic Exchange Service (DAAD) offers scholarships for international students to study at German universities across various academic levels.",
			Deadline:        "October 15, 2023",
			Amount:          "€850-1,200/month",
			IsFeatured:      true,
			IsFullyFunded:   true,
			CountryID:       intPtr(3),
			LevelID:         intPtr(3),
			CategoryID:      intPtr(3),
			Requirements:    "Academic excellence, research proposal",
			ApplicationLink: "https://www.daad.de/en/",
			ImageURL:        "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f",
		},
	}
	for _, sc := range scholarships {
		if _, err := s.CreateScholarship(sc); err != nil {
			return fmt.Errorf("seed scholarship %q: %w", sc.Slug, err)
		}
	}

	posts := []models.Post{
		{
			Title:           "How to Write a Winning Scholarship Essay",
			Slug:            "how-to-write-winning-scholarship-essay",
			Content:         "Learn the essential tips and strategies for crafting a compelling scholarship essay that will set you apart from other applicants and increase your chances of winning.",
			Excerpt:         "Learn the essential tips and strategies for crafting a compelling scholarship essay that will set you apart from other applicants and increase your chances of winning.",
			AuthorID:        intPtr(1),
			ImageURL:        "https://images.unsplash.com/photo-1517486808906-6ca8b3f8e1c1",
			IsFeatured:      true,
			MetaTitle:       "Writing Winning Scholarship Essays - Tips and Strategies",
			MetaDescription: "Learn how to write compelling scholarship essays that stand out and increase your chances of success.",
		},
		{
			Title:           "10 Common Scholarship Application Mistakes to Avoid",
			Slug:            "common-scholarship-application-mistakes",
			Content:         "Discover the most common pitfalls that scholarship applicants fall into and learn how to avoid them to maximize your chances of success.",
			Excerpt:         "Discover the most common pitfalls that scholarship applicants fall into and learn how to avoid them to maximize your chances of success.",
			AuthorID:        intPtr(1),
			ImageURL:        "https://images.unsplash.com/photo-1519452575417-564c1401ecc0",
			IsFeatured:      true,
			MetaTitle:       "Common Scholarship Application Mistakes to Avoid",
			MetaDescription: "Learn about the most frequent mistakes applicants make and how to avoid them to improve your chances of winning scholarships.",
		},
		{
			Title:           "How to Prepare for a Scholarship Interview",
			Slug:            "how-to-prepare-scholarship-interview",
			Content:         "Master the art of scholarship interviews with our comprehensive guide covering common questions, professional etiquette, and strategies to showcase your strengths.",
			Excerpt:         "Master the art of scholarship interviews with our comprehensive guide covering common questions, professional etiquette, and strategies to showcase your strengths.",
			AuthorID:        intPtr(1),
			ImageURL:        "https://images.unsplash.com/photo-1518107616985-bd48230d3b20",
			IsFeatured:      true,
			MetaTitle:       "Scholarship Interview Preparation Guide",
			MetaDescription: "A comprehensive guide to preparing for scholarship interviews, with tips, common questions, and strategies for success.",
		},
	}
	for _, p := range posts {
		if _, err := s.CreatePost(p); err != nil {
			return fmt.Errorf("seed post %q: %w", p.Slug, err)
		}
	}

	stories := []models.SuccessStory{
		{
			Name:            "Ahmed Mahmoud",
			Title:           "PhD in Computer Science at MIT",
			Slug:            "ahmed-mahmoud-fulbright",
			Content:         "Securing the Fulbright scholarship changed my life completely. I'm now pursuing my PhD at MIT, researching artificial intelligence and its applications in healthcare. The application process was challenging, but the resources from FULLSCO helped me craft a compelling application.",
			ScholarshipName: "Fulbright Scholar",
			ImageURL:        "https://randomuser.me/api/portraits/men/75.jpg",
		},
		{
			Name:            "Maria Rodriguez",
			Title:           "Masters in International Relations at Oxford",
			Slug:            "maria-rodriguez-chevening",
			Content:         "As a first-generation college student from Colombia, studying at Oxford seemed impossible. The Chevening Scholarship made it a reality. The application guides on FULLSCO were invaluable in helping me structure my essays and prepare for interviews.",
			ScholarshipName: "Chevening Scholar",
			ImageURL:        "https://randomuser.me/api/portraits/women/32.jpg",
		},
	}
	for _, st := range stories {
		if _, err := s.CreateSuccessStory(st); err != nil {
			return fmt.Errorf("seed story %q: %w", st.Slug, err)
		}
	}

	seoSettings := []models.SeoSetting{
		{
			PagePath:        "/",
			MetaTitle:       "FULLSCO - Find Your Perfect Scholarship Opportunity",
			MetaDescription: "Discover thousands of scholarships worldwide and get guidance on how to apply successfully.",
			Keywords:        "scholarships, education funding, international scholarships, study abroad",
		},
		{
			PagePath:        "/scholarships",
			MetaTitle:       "Browse Scholarships - FULLSCO",
			MetaDescription: "Find the perfect scholarship opportunity for your academic journey. Filter by country, level, and field of study.",
			Keywords:        "scholarship search, academic funding, graduate scholarships, undergraduate scholarships",
		},
	}
	for _, st := range seoSettings {
		s.UpsertSeoSetting(st)
	}

	return nil
}
