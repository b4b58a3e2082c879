package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

func TestCategorizeExpense(t *testing.T) {
	tests := []struct {
		description string
		category    string
	}{
		{"Зарплата за январь", "Зарплата"},
		{"ЗАРПЛАТА ЗА ЯНВАРЬ", "Зарплата"},
		{"Оплата налога УСН", "Налоги"},
		{"Аренда офиса за март", "Аренда"},
		{"Комиссия за перевод", "Банковские услуги"},
		{"Закупка товара у поставщика", "Закупки"},
		{"Реклама в яндексе", "Маркетинг"},
		{"Интернет и телефония", "Связь"},
		{"Доставка документов", "Транспорт"},
		{"Канцтовары для офиса", "Закупки"}, // "товар" substring
		{"Прочее", "Прочие расходы"},
		{"", "Прочие расходы"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.category, domain.CategorizeExpense(tt.description), "description %q", tt.description)
	}
}

func TestCategorizeExpenseFirstMatchWins(t *testing.T) {
	// Salary rules precede tax rules, so a description matching both is a
	// salary; tax rules precede rent, so a rent tax is a tax.
	assert.Equal(t, "Зарплата", domain.CategorizeExpense("Зарплата и налоги"))
	assert.Equal(t, "Налоги", domain.CategorizeExpense("Налог на аренду"))
}

func TestCategorizeExpenseAlwaysSingleCategory(t *testing.T) {
	descriptions := []string{
		"Зарплата", "налог", "аренда", "банк", "закупка", "реклама",
		"интернет", "такси", "что-то непонятное",
	}
	for _, d := range descriptions {
		category := domain.CategorizeExpense(d)
		assert.NotEmpty(t, category)
	}
}
