package export

import "io"

// WritePeopleByTime lists every participant with their items in time order.
func WritePeopleByTime(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	for _, name := range p.participantsByLastName() {
		pr.printf("\n%s\n", name)
		for _, elem := range p.sortedElements(name) {
			pr.printf("    %s: %s [%s]%s\n",
				p.Res.Week.DayTimeString(elem.Time), elem.DisplayName(), elem.Room, elem.ModFlag())
		}
	}
	return pr.err
}

// WriteItemsByTime lists every slot's items with their people lists.
func WriteItemsByTime(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	for _, t := range p.Res.Times {
		for _, room := range p.roomNames() {
			for _, item := range p.itemsAt(t, room) {
				pr.printf("%s, %s: %s   %s\n",
					p.Res.Week.DayTimeString(t), room, item.Name, item.DisplayPeople())
				if item.Precis != "" {
					pr.printf("     %s\n", item.Precis)
				}
			}
		}
	}
	return pr.err
}

// WriteParticipantSchedules writes the long-form per-person schedule,
// including each item's full people list and precis.
func WriteParticipantSchedules(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	for _, name := range p.participantsByLastName() {
		pr.printf("\n\n********************************************\n")
		pr.printf("%s\n", name)
		for _, elem := range p.sortedElements(name) {
			pr.printf("\n%s: %s [%s]%s\n",
				p.Res.Week.DayTimeString(elem.Time), elem.DisplayName(), elem.Room, elem.ModFlag())
			if item, ok := p.Res.Items.Lookup(elem.ItemName); ok {
				pr.printf("Participants: %s\n", item.DisplayPeople())
				if item.Precis != "" {
					pr.printf("Precis: %s\n", item.Precis)
				}
			}
		}
	}
	return pr.err
}

// WriteItemPeopleCounts reports how many people are on each item.
func WriteItemPeopleCounts(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("List of number of people scheduled on each item\n\n")
	for _, name := range p.Res.Items.Names() {
		item, _ := p.Res.Items.Lookup(name)
		pr.printf("%s %s: %d\n", p.Res.Week.DayTimeString(item.Time), item.Name, len(item.People))
	}
	return pr.err
}

// WritePeopleItemCounts reports how many items each person from the people
// table is on, flagging unconfirmed people and confirmed people with no
// items.
func WritePeopleItemCounts(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("List of number of items each person is scheduled on\n\n")
	for _, name := range sortedPersonNames(p.People) {
		person := p.People[name]
		real := 0
		for _, elem := range p.Res.Schedules[name] {
			if !elem.IsDummy {
				real++
			}
		}
		switch {
		case real > 0 && person.RespondedYes():
			pr.printf("%s: %d\n", name, real)
		case real > 0:
			pr.printf("%s: %d not confirmed\n", name, real)
		case person.RespondedYes():
			pr.printf("%s: coming, but not scheduled\n", name)
		}
	}
	return pr.err
}

// WritePocketProgram writes the compact whole-convention schedule.
func WritePocketProgram(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("Schedule\n")
	for _, t := range p.Res.Times {
		pr.printf("\n%s\n", p.Res.Week.DayTimeString(t))
		for _, room := range p.roomNames() {
			for _, item := range p.itemsAt(t, room) {
				pr.printf("   %s:  %s\n", room, item.DisplayName())
				if len(item.People) > 0 {
					pr.printf("            %s\n", item.DisplayPeople())
				}
				if item.Precis != "" {
					pr.printf("            %s\n", item.Precis)
				}
			}
		}
	}
	return pr.err
}
