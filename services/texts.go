package services

// Prompts of the event creation wizard.
const (
	AskEventName        = "Введите название события:"
	AskEventDateTime    = "Введите дату и время события в формате ГГГГ-ММ-ДД ЧЧ:ММ:"
	InvalidDateTimeText = "Неверный формат даты. Попробуйте ещё раз."
	EmptyNameText       = "Название события не может быть пустым. Введите название события:"
	EventCreatedFormat  = "Событие '%s' успешно создано на %s.\nСоздатель: @%s."
)
