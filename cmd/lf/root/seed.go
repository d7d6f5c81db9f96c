package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelforge/internal/engine"
	"levelforge/internal/ui"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the starter equipment, task and skill catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			eqCount, err := svc.EquipmentRepo().Count(ctx)
			if err != nil {
				return err
			}
			if eqCount == 0 {
				for _, e := range starterEquipment {
					if _, err := svc.CreateEquipment(ctx, e); err != nil {
						return err
					}
				}
				fmt.Fprintf(out, "%s seeded %d equipment definitions\n", ui.Good.Render(ui.IconDone), len(starterEquipment))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("equipment catalog not empty, skipping"))
			}

			taskCount, err := svc.TaskRepo().Count(ctx)
			if err != nil {
				return err
			}
			if taskCount == 0 {
				for _, t := range starterTasks {
					if _, err := svc.CreateTask(ctx, t); err != nil {
						return err
					}
				}
				fmt.Fprintf(out, "%s seeded %d task definitions\n", ui.Good.Render(ui.IconDone), len(starterTasks))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("task catalog not empty, skipping"))
			}

			skillCount, err := svc.SkillRepo().Count(ctx)
			if err != nil {
				return err
			}
			if skillCount == 0 {
				for _, sk := range starterSkills {
					if _, err := svc.CreateSkill(ctx, sk); err != nil {
						return err
					}
				}
				fmt.Fprintf(out, "%s seeded %d skill definitions\n", ui.Good.Render(ui.IconDone), len(starterSkills))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("skill catalog not empty, skipping"))
			}

			return nil
		},
	}

	return cmd
}

var starterEquipment = []engine.EquipmentInput{
	{Name: "Rusty Sword", Type: "weapon", Level: 1, Rarity: "common", Attack: 5, Price: 50},
	{Name: "Apprentice Staff", Type: "weapon", Level: 1, Rarity: "common", Attack: 3, Intelligence: 2, Price: 50},
	{Name: "Short Bow", Type: "weapon", Level: 1, Rarity: "common", Attack: 4, Agility: 1, Price: 50},
	{Name: "Leather Cap", Type: "helmet", Level: 1, Rarity: "common", Defense: 2, Price: 30},
	{Name: "Leather Vest", Type: "chest", Level: 1, Rarity: "common", Defense: 4, Price: 60},
	{Name: "Worn Gloves", Type: "gloves", Level: 1, Rarity: "common", Defense: 1, Strength: 1, Price: 20},
	{Name: "Traveler Boots", Type: "boots", Level: 1, Rarity: "common", Defense: 1, Agility: 2, Price: 25},
	{Name: "Copper Ring", Type: "accessory1", Level: 1, Rarity: "common", Vitality: 1, Price: 40},
	{Name: "Knight Blade", Type: "weapon", Level: 5, Rarity: "rare", Attack: 14, Strength: 3, Price: 300},
	{Name: "Iron Helm", Type: "helmet", Level: 5, Rarity: "rare", Defense: 6, Vitality: 2, Price: 200},
	{Name: "Sage Pendant", Type: "accessory2", Level: 10, Rarity: "epic", Intelligence: 8, Vitality: 3, Price: 800},
}

var starterSkills = []engine.SkillInput{
	{Name: "Power Strike", Description: "A heavy melee blow.", Kind: engine.SkillAttack, Rarity: engine.RarityCommon, BaseDamage: 15, Cooldown: 3, RequiredLevel: 1, ManaCost: 5},
	{Name: "Fireball", Description: "Hurl a ball of flame.", Kind: engine.SkillAttack, Rarity: engine.RarityUncommon, BaseDamage: 25, Cooldown: 5, RequiredLevel: 3, ManaCost: 12},
	{Name: "Iron Skin", Description: "Harden the skin against blows.", Kind: engine.SkillDefense, Rarity: engine.RarityCommon, BaseDefense: 10, Cooldown: 8, RequiredLevel: 2, ManaCost: 8},
	{Name: "Minor Heal", Description: "Mend light wounds.", Kind: engine.SkillSupport, Rarity: engine.RarityCommon, BaseHealing: 20, Cooldown: 4, RequiredLevel: 1, ManaCost: 10},
	{Name: "Shadow Step", Description: "Blink behind the target.", Kind: engine.SkillSpecial, Rarity: engine.RarityRare, BaseDamage: 10, Cooldown: 12, RequiredLevel: 5, ManaCost: 15},
	{Name: "Dragon's Wrath", Description: "Channel draconic fury.", Kind: engine.SkillSpecial, Rarity: engine.RarityLegendary, BaseDamage: 80, Cooldown: 30, RequiredLevel: 20, ManaCost: 50},
}

var starterTasks = []engine.TaskInput{
	{Name: "First Steps", Description: "Defeat 3 training dummies.", Category: engine.TaskMain, RequiredLevel: 1, ExpReward: 500, GoldReward: 50, TargetCount: 3},
	{Name: "Into the Woods", Description: "Clear the forest outskirts.", Category: engine.TaskMain, RequiredLevel: 2, ExpReward: 1200, GoldReward: 120, TargetCount: 5},
	{Name: "Wolf Cull", Description: "Hunt wolves around the village.", Category: engine.TaskSide, RequiredLevel: 1, ExpReward: 300, GoldReward: 30, TargetCount: 8},
	{Name: "Herb Gathering", Description: "Collect healing herbs.", Category: engine.TaskSide, RequiredLevel: 3, ExpReward: 400, GoldReward: 60, ItemReward: "Minor Potion", TargetCount: 10},
	{Name: "Daily Training", Description: "Complete a sparring session.", Category: engine.TaskDaily, RequiredLevel: 1, ExpReward: 200, GoldReward: 20, TargetCount: 1, ResetDaily: true},
	{Name: "Daily Patrol", Description: "Walk the village perimeter.", Category: engine.TaskDaily, RequiredLevel: 5, ExpReward: 600, GoldReward: 80, TargetCount: 2, ResetDaily: true},
}
