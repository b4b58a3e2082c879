package domain

import "strings"

// CategoryOther is the fallback expense category when no rule matches.
const CategoryOther = "Прочие расходы"

// CategoryRule maps description keywords to an expense category. Rules are
// evaluated in slice order and the first match wins, so an entry is always
// assigned exactly one category.
type CategoryRule struct {
	Category string
	Keywords []string
}

// ExpenseCategoryRules is the fixed, ordered keyword rule set used to
// categorize expense descriptions. Matching is case-insensitive substring
// matching; order is significant ("налог на аренду" is a tax, not rent).
var ExpenseCategoryRules = []CategoryRule{
	{Category: "Зарплата", Keywords: []string{"зарплат", "оклад", "оплата труда", "отпускн"}},
	{Category: "Налоги", Keywords: []string{"налог", "ндфл", "взнос", "усн", "пени"}},
	{Category: "Аренда", Keywords: []string{"аренд"}},
	{Category: "Банковские услуги", Keywords: []string{"банк", "комисси", "рко", "эквайринг"}},
	{Category: "Закупки", Keywords: []string{"закуп", "товар", "материал", "поставк"}},
	{Category: "Маркетинг", Keywords: []string{"реклам", "маркетинг", "продвижен"}},
	{Category: "Связь", Keywords: []string{"связь", "интернет", "телефон"}},
	{Category: "Транспорт", Keywords: []string{"транспорт", "доставк", "бензин", "такси"}},
}

// Categories used by the P&L report to split expenses into statement lines.
const (
	CategoryPurchases = "Закупки"
	CategoryTaxes     = "Налоги"
)

// CategorizeExpense assigns an expense description to the first matching
// category rule, falling back to CategoryOther.
func CategorizeExpense(description string) string {
	lowered := strings.ToLower(description)
	for _, rule := range ExpenseCategoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return rule.Category
			}
		}
	}
	return CategoryOther
}
