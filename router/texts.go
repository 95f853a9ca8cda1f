package router

const (
	MenuText           = "Привет! Выберите действие:"
	CreateEventLabel   = "Создать событие"
	JoinQueueLabel     = "Записаться в очередь"
	ChooseEventText    = "Выберите событие:"
	NoEventsText       = "Нет доступных событий для записи."
	JoinLabel          = "Записаться"
	LeaveLabel         = "Отписаться"
	NoParticipantsText = "Нет участников"
	EventPageFormat    = "Название: %s\nДата и время: %s\nСоздатель: @%s\nУчастники:\n%s"
	ParticipantFormat  = "%d. @%s"
	JoinedFormat       = "Вы успешно записаны на событие '%s'. Ваш номер в очереди: %d."
	LeftFormat         = "Вы успешно отписались от события '%s'."
	NotFoundText       = "Событие не найдено."
	AlreadyJoinedText  = "Вы уже записаны на это событие."
	NotJoinedText      = "Вы не были записаны на это событие."
	StorageFailureText = "Что-то пошло не так. Попробуйте ещё раз чуть позже."
	UnknownActionText  = "Неизвестное действие. Отправьте /start, чтобы открыть меню."
)
