package scoring

import (
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/types"
)

// Score bands for insight generation.
const (
	overallExcellent = 80
	overallGood      = 65
	overallModerate  = 50

	keywordStrongBand = 70
	keywordWeakBand   = 40

	skillsStrongBand = 75
	skillsWeakBand   = 50

	experienceStrongBand = 80
	experienceWeakBand   = 60
)

// Insights maps a score record to short human-readable findings. The
// overall-band message always comes first; the keyword, skills, and
// experience messages appear only when their thresholds hold.
func (e *Engine) Insights(record types.ScoreRecord) []string {
	insights := make([]string, 0, 4)

	switch {
	case record.OverallScore >= overallExcellent:
		insights = append(insights, "Excellent match for this position")
	case record.OverallScore >= overallGood:
		insights = append(insights, "Good candidate with strong potential")
	case record.OverallScore >= overallModerate:
		insights = append(insights, "Moderate match, may need additional evaluation")
	default:
		insights = append(insights, "Limited alignment with job requirements")
	}

	if record.KeywordScore >= keywordStrongBand {
		insights = append(insights, "Strong keyword alignment with job description")
	} else if record.KeywordScore < keywordWeakBand {
		insights = append(insights, "Low keyword match - resume may need optimization")
	}

	if record.SkillsScore >= skillsStrongBand {
		insights = append(insights, "Excellent technical skills match")
	} else if record.SkillsScore < skillsWeakBand {
		insights = append(insights, "Gap in required technical skills")
	}

	if record.ExperienceScore >= experienceStrongBand {
		insights = append(insights, "Meets or exceeds experience requirements")
	} else if record.ExperienceScore < experienceWeakBand {
		insights = append(insights, "May have less experience than preferred")
	}

	return insights
}
