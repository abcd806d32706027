package main

import (
	"context"
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/domain"
	"career-compass/internal/logger"
	"career-compass/internal/repository"
	"career-compass/internal/util"

	"go.uber.org/zap"
)

// questionBank is the starter assessment catalog, balanced across the five
// quiz categories.
func questionBank() []*domain.Question {
	return []*domain.Question{
		domain.NewQuestion(
			"When faced with a complex problem, I am most likely to:",
			"multiple-choice", domain.CategoryAptitude, "medium",
			[]domain.Option{
				{Text: "Break it down into smaller parts and solve each step-by-step.", Weight: 10, Tags: []string{"logical-thinking", "problem-solving"}},
				{Text: "Brainstorm creative, unconventional solutions.", Weight: 8, Tags: []string{"creativity", "innovative-thinking"}},
				{Text: "Look for existing examples and modify them to fit the situation.", Weight: 6, Tags: []string{"technical-skills", "practical-skills"}},
				{Text: "Discuss the problem with a team to get different perspectives.", Weight: 7, Tags: []string{"communication", "teamwork", "leadership"}},
			},
			[]string{"logical-thinking", "problem-solving", "creativity"},
		),
		domain.NewQuestion(
			"Which of the following activities do you enjoy the most?",
			"multiple-choice", domain.CategoryInterest, "easy",
			[]domain.Option{
				{Text: "Analyzing data and finding patterns.", Weight: 10, Tags: []string{"analytical-skills", "mathematics-interest"}},
				{Text: "Writing stories, poems, or articles.", Weight: 9, Tags: []string{"creativity", "arts-interest"}},
				{Text: "Organizing events or leading a group project.", Weight: 8, Tags: []string{"leadership", "communication"}},
				{Text: "Working with hands-on projects like building or repairing things.", Weight: 7, Tags: []string{"technical-skills", "practical-skills"}},
			},
			[]string{"analytical-skills", "creativity", "leadership"},
		),
		domain.NewQuestion(
			"How would your friends describe you?",
			"multiple-choice", domain.CategoryPersonality, "medium",
			[]domain.Option{
				{Text: "A good listener who provides sound advice.", Weight: 9, Tags: []string{"communication", "empathy"}},
				{Text: "The one who always comes up with new ideas.", Weight: 10, Tags: []string{"creativity", "innovative-thinking"}},
				{Text: "Someone who is organized and keeps things on track.", Weight: 8, Tags: []string{"leadership", "management"}},
				{Text: "A detail-oriented person who notices small things others miss.", Weight: 7, Tags: []string{"attention-to-detail", "analytical-skills"}},
			},
			[]string{"communication", "creativity", "attention-to-detail"},
		),
		domain.NewQuestion(
			"How do you prefer to learn a new skill?",
			"multiple-choice", domain.CategorySkills, "easy",
			[]domain.Option{
				{Text: "By reading books and articles.", Weight: 7, Tags: []string{"analytical-skills", "research-interest"}},
				{Text: "By watching videos or listening to podcasts.", Weight: 8, Tags: []string{"visual-skills", "auditory-skills"}},
				{Text: "By doing and practicing myself.", Weight: 10, Tags: []string{"technical-skills", "hands-on-learning", "practical-skills"}},
				{Text: "By collaborating with others in a group setting.", Weight: 9, Tags: []string{"teamwork", "communication"}},
			},
			[]string{"learning-style", "practical-skills", "communication"},
		),
		domain.NewQuestion(
			"What matters most to you in a career?",
			"multiple-choice", domain.CategoryValues, "medium",
			[]domain.Option{
				{Text: "High salary and financial stability.", Weight: 6, Tags: []string{"business-interest", "management"}},
				{Text: "Making a positive impact on society.", Weight: 10, Tags: []string{"empathy", "helping-others"}},
				{Text: "Creative freedom and self-expression.", Weight: 9, Tags: []string{"creativity", "arts-interest"}},
				{Text: "The opportunity to constantly learn and solve new challenges.", Weight: 8, Tags: []string{"problem-solving", "analytical-skills"}},
			},
			[]string{"values", "creativity", "problem-solving"},
		),
		domain.NewQuestion(
			"Which of these subjects are you most passionate about?",
			"multiple-choice", domain.CategoryInterest, "easy",
			[]domain.Option{
				{Text: "Mathematics and Physics.", Weight: 10, Tags: []string{"science-interest", "mathematics-interest"}},
				{Text: "Literature and History.", Weight: 9, Tags: []string{"arts-interest", "research-interest"}},
				{Text: "Economics and Commerce.", Weight: 8, Tags: []string{"business-interest"}},
				{Text: "Computer Science and Technology.", Weight: 10, Tags: []string{"technical-skills", "logical-thinking"}},
			},
			[]string{"science-interest", "arts-interest", "business-interest", "technical-skills"},
		),
		domain.NewQuestion(
			"You are planning a project. What role do you naturally take?",
			"multiple-choice", domain.CategoryPersonality, "medium",
			[]domain.Option{
				{Text: "The visionary, coming up with the big idea.", Weight: 9, Tags: []string{"creativity", "leadership"}},
				{Text: "The organizer, creating a detailed plan and schedule.", Weight: 8, Tags: []string{"management", "attention-to-detail"}},
				{Text: "The executor, focusing on the technical tasks.", Weight: 10, Tags: []string{"technical-skills", "hands-on-learning"}},
				{Text: "The communicator, keeping everyone on the same page.", Weight: 7, Tags: []string{"communication", "teamwork"}},
			},
			[]string{"leadership", "technical-skills", "management"},
		),
		domain.NewQuestion(
			"How do you react to criticism?",
			"multiple-choice", domain.CategoryPersonality, "hard",
			[]domain.Option{
				{Text: "I take it constructively and use it to improve.", Weight: 9, Tags: []string{"adaptability", "self-awareness"}},
				{Text: "I tend to get defensive and take it personally.", Weight: 4, Tags: []string{"emotional-intelligence"}},
				{Text: "I ignore it if I don't agree with it.", Weight: 5, Tags: []string{"confidence"}},
				{Text: "I ask for more details to understand the perspective.", Weight: 10, Tags: []string{"analytical-skills", "problem-solving"}},
			},
			[]string{"adaptability", "analytical-skills", "emotional-intelligence"},
		),
		domain.NewQuestion(
			"What is your preferred method for solving puzzles?",
			"multiple-choice", domain.CategoryAptitude, "medium",
			[]domain.Option{
				{Text: "Trying every possible combination until I find the solution.", Weight: 6, Tags: []string{"patience", "endurance"}},
				{Text: "Methodically using logic to eliminate incorrect options.", Weight: 10, Tags: []string{"logical-thinking", "analytical-skills"}},
				{Text: "Visualizing the solution in my head.", Weight: 9, Tags: []string{"spatial-reasoning", "creativity"}},
				{Text: "Asking a friend for help or a hint.", Weight: 5, Tags: []string{"teamwork"}},
			},
			[]string{"logical-thinking", "analytical-skills", "creativity"},
		),
		domain.NewQuestion(
			"What kind of TV shows do you prefer?",
			"multiple-choice", domain.CategoryInterest, "easy",
			[]domain.Option{
				{Text: "Documentaries and science shows.", Weight: 10, Tags: []string{"science-interest", "analytical-skills"}},
				{Text: "Dramas and historical series.", Weight: 9, Tags: []string{"arts-interest", "communication"}},
				{Text: "Business and entrepreneurial reality shows.", Weight: 8, Tags: []string{"business-interest", "leadership"}},
				{Text: "DIY and home renovation shows.", Weight: 7, Tags: []string{"practical-skills", "hands-on-learning"}},
			},
			[]string{"science-interest", "arts-interest", "business-interest"},
		),
		domain.NewQuestion(
			"You are working on a group project. Which of these scenarios would you find most frustrating?",
			"multiple-choice", domain.CategoryValues, "medium",
			[]domain.Option{
				{Text: "Unclear goals and a lack of direction.", Weight: 9, Tags: []string{"management", "leadership"}},
				{Text: "Personality conflicts and poor communication.", Weight: 8, Tags: []string{"communication", "teamwork"}},
				{Text: "Having to do repetitive, mundane tasks.", Weight: 7, Tags: []string{"creativity"}},
				{Text: "A lack of proper resources to complete the work.", Weight: 6, Tags: []string{"problem-solving", "technical-skills"}},
			},
			[]string{"management", "communication", "problem-solving"},
		),
		domain.NewQuestion(
			"How do you handle deadlines?",
			"multiple-choice", domain.CategorySkills, "hard",
			[]domain.Option{
				{Text: "I start early and finish well ahead of time.", Weight: 10, Tags: []string{"organization", "discipline"}},
				{Text: "I work best under pressure and get it done at the last minute.", Weight: 6, Tags: []string{"stress-management"}},
				{Text: "I prioritize and focus on the most important tasks first.", Weight: 9, Tags: []string{"management", "problem-solving"}},
				{Text: "I often miss them, or have to ask for extensions.", Weight: 4, Tags: []string{"time-management"}},
			},
			[]string{"time-management", "management", "organization"},
		),
		domain.NewQuestion(
			"Which tool or skill would you be most interested in learning?",
			"multiple-choice", domain.CategoryInterest, "medium",
			[]domain.Option{
				{Text: "A programming language like Python or Java.", Weight: 10, Tags: []string{"technical-skills", "logical-thinking"}},
				{Text: "A graphic design software like Adobe Photoshop.", Weight: 9, Tags: []string{"creativity", "visual-skills"}},
				{Text: "Public speaking and presentation skills.", Weight: 8, Tags: []string{"communication", "leadership"}},
				{Text: "Financial modeling and analysis.", Weight: 7, Tags: []string{"analytical-skills", "business-interest"}},
			},
			[]string{"technical-skills", "creativity", "communication", "analytical-skills"},
		),
		domain.NewQuestion(
			"What kind of problems excite you the most?",
			"multiple-choice", domain.CategoryAptitude, "hard",
			[]domain.Option{
				{Text: "Abstract puzzles with no clear answer.", Weight: 9, Tags: []string{"logical-thinking", "problem-solving"}},
				{Text: "Improving an existing system or process.", Weight: 8, Tags: []string{"analytical-skills", "efficiency"}},
				{Text: "Building something entirely new from scratch.", Weight: 10, Tags: []string{"technical-skills", "innovative-thinking"}},
				{Text: "Helping a person or community in need.", Weight: 7, Tags: []string{"empathy", "helping-others"}},
			},
			[]string{"problem-solving", "innovative-thinking", "helping-others"},
		),
		domain.NewQuestion(
			"How do you typically spend your free time?",
			"multiple-choice", domain.CategoryInterest, "medium",
			[]domain.Option{
				{Text: "Reading about new technologies or scientific discoveries.", Weight: 10, Tags: []string{"science-interest", "technical-skills"}},
				{Text: "Visiting museums, galleries, or attending cultural events.", Weight: 9, Tags: []string{"arts-interest", "creativity"}},
				{Text: "Following financial markets or business news.", Weight: 8, Tags: []string{"business-interest", "analytical-skills"}},
				{Text: "Volunteering or participating in community service.", Weight: 7, Tags: []string{"empathy", "helping-others"}},
			},
			[]string{"science-interest", "arts-interest", "business-interest", "helping-others"},
		),
		domain.NewQuestion(
			"What do you consider your biggest strength?",
			"multiple-choice", domain.CategoryPersonality, "hard",
			[]domain.Option{
				{Text: "I am a natural leader and motivate others.", Weight: 10, Tags: []string{"leadership", "communication"}},
				{Text: "I have a keen eye for detail and notice things others miss.", Weight: 9, Tags: []string{"attention-to-detail", "analytical-skills"}},
				{Text: "I am an excellent communicator and presenter.", Weight: 8, Tags: []string{"communication", "public-speaking"}},
				{Text: "I am highly creative and think outside the box.", Weight: 7, Tags: []string{"creativity", "innovative-thinking"}},
			},
			[]string{"leadership", "attention-to-detail", "communication", "creativity"},
		),
		domain.NewQuestion(
			"Which of these would you prefer to do in a typical workday?",
			"multiple-choice", domain.CategoryValues, "medium",
			[]domain.Option{
				{Text: "Working on a single, long-term project with a clear goal.", Weight: 9, Tags: []string{"focus", "discipline"}},
				{Text: "Juggling multiple small projects with tight deadlines.", Weight: 7, Tags: []string{"time-management", "adaptability"}},
				{Text: "Collaborating closely with a team to achieve a shared vision.", Weight: 8, Tags: []string{"teamwork", "communication"}},
				{Text: "Working independently with minimal supervision.", Weight: 10, Tags: []string{"autonomy", "self-discipline"}},
			},
			[]string{"management", "teamwork", "autonomy"},
		),
		domain.NewQuestion(
			"What is your reaction when a project fails?",
			"multiple-choice", domain.CategoryPersonality, "medium",
			[]domain.Option{
				{Text: "I analyze what went wrong to prevent it from happening again.", Weight: 10, Tags: []string{"problem-solving", "analytical-skills"}},
				{Text: "I am disappointed, but I move on to the next task quickly.", Weight: 7, Tags: []string{"resilience", "adaptability"}},
				{Text: "I blame others or external factors for the failure.", Weight: 4, Tags: []string{"accountability"}},
				{Text: "I try to find a creative way to salvage the project.", Weight: 9, Tags: []string{"creativity", "innovative-thinking"}},
			},
			[]string{"problem-solving", "analytical-skills", "creativity"},
		),
		domain.NewQuestion(
			"Which of these best describes your approach to a new technology?",
			"multiple-choice", domain.CategorySkills, "medium",
			[]domain.Option{
				{Text: "I read the documentation and understand its principles before using it.", Weight: 10, Tags: []string{"technical-skills", "research-interest"}},
				{Text: "I jump right in and learn by trial and error.", Weight: 8, Tags: []string{"hands-on-learning", "practical-skills"}},
				{Text: "I wait for others to figure it out before I try it myself.", Weight: 5, Tags: []string{"risk-aversion"}},
				{Text: "I find a course or tutorial to guide me through it.", Weight: 7, Tags: []string{"learning-style", "discipline"}},
			},
			[]string{"technical-skills", "learning-style", "hands-on-learning"},
		),
		domain.NewQuestion(
			"Which type of task do you find most rewarding?",
			"multiple-choice", domain.CategoryValues, "easy",
			[]domain.Option{
				{Text: "A task that has a measurable, quantitative result.", Weight: 10, Tags: []string{"analytical-skills", "efficiency"}},
				{Text: "A task that allows for a lot of personal expression.", Weight: 9, Tags: []string{"creativity", "arts-interest"}},
				{Text: "A task that involves working with and helping people.", Weight: 8, Tags: []string{"empathy", "helping-others"}},
				{Text: "A task that is part of a larger, well-defined plan.", Weight: 7, Tags: []string{"organization", "management"}},
			},
			[]string{"analytical-skills", "creativity", "helping-others", "management"},
		),
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	questionRepo := repository.NewSQLXQuestionRepository(db)
	ctx := context.Background()

	// Seeding is idempotent: a non-empty catalog is left alone.
	count, err := questionRepo.CountQuestions(ctx)
	if err != nil {
		appLogger.Fatal("Failed to count existing questions", zap.Error(err))
	}
	if count > 0 {
		appLogger.Info("Question catalog already seeded, nothing to do", zap.Int("existing", count))
		return
	}

	seeded := 0
	for _, q := range questionBank() {
		if err := q.Validate(); err != nil {
			appLogger.Fatal("Invalid seed question", zap.String("text", q.Text), zap.Error(err))
		}
		q.ID = util.NewULID()
		if err := questionRepo.SaveQuestion(ctx, q); err != nil {
			appLogger.Fatal("Failed to save question", zap.String("text", q.Text), zap.Error(err))
		}
		seeded++
	}

	appLogger.Info("Question catalog seeded", zap.Int("questions", seeded))
}
