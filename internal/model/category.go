package model

// Category is one of the fixed topic tags lessons and requests are filed under.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var categories = []Category{
	{ID: "nessuna-conoscenza", Label: "Nessuna conoscenza pregressa"},
	{ID: "problemi-ansia", Label: "Problemi di ansia"},
	{ID: "conoscenza-di-se", Label: "Conoscenza di sé"},
	{ID: "comunicazione-linguaggio", Label: "Comunicazione e linguaggio"},
	{ID: "strategie-colloquio", Label: "Strategie di colloquio"},
	{ID: "presentazione-professionale", Label: "Presentazione professionale"},
}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func IsCategory(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// CategoryLabel returns the label for id, or id itself when it is not a known category.
func CategoryLabel(id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}
