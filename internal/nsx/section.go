package nsx

import "context"

const sectionDescription = "Rules created via DFW Request Portal"

// ResolveSection finds the section rules are written into. Three tiers,
// first hit wins:
//
//  1. configured section id, fetched directly; any failure falls through
//  2. exact display-name match over the existing sections
//  3. create a new stateful section with the configured name and category
//
// Callers invoke this once per push batch, not once per rule, so a lost
// configured id cannot fan out into duplicate sections.
func (c *Client) ResolveSection(ctx context.Context) (Section, error) {
	if c.section.Id != "" {
		section, err := c.GetSection(ctx, c.section.Id)
		if err == nil {
			return section, nil
		}
		// not-found and transport errors alike: fall back to name lookup
	}

	sections, err := c.ListSections(ctx)
	if err != nil {
		return Section{}, err
	}
	for _, s := range sections {
		if s.DisplayName == c.section.Name {
			return s, nil
		}
	}

	return c.CreateSection(ctx, Section{
		DisplayName: c.section.Name,
		Description: sectionDescription,
		SectionType: c.section.Category,
		Stateful:    true,
	})
}
